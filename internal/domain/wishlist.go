package domain

import (
	"strconv"
	"time"
)

// WishlistEntry — запись избранного. ID может быть временным
// (сгенерированным клиентом до подтверждения сервера): следующая
// авторитетная выборка заменяет запись целиком.
// Инвариант: не более одной записи на ProductRef.
type WishlistEntry struct {
	ID         string    `json:"id"`
	ProductRef string    `json:"product_ref"`
	CreatedAt  time.Time `json:"created_at"`
	Snapshot   *ProductSnapshot
}

// Provisional — true, если запись ещё не подтверждена сервером.
func (e WishlistEntry) Provisional() bool {
	return len(e.ID) > len(localIDPrefix) && e.ID[:len(localIDPrefix)] == localIDPrefix
}

const localIDPrefix = "local-"

// NewProvisionalEntry — синтезирует оптимистичную запись до сетевого
// вызова: временный id из текущего времени, CreatedAt = now.
func NewProvisionalEntry(productRef string, now time.Time) WishlistEntry {
	return WishlistEntry{
		ID:         localIDPrefix + strconv.FormatInt(now.UnixNano(), 10),
		ProductRef: productRef,
		CreatedAt:  now,
	}
}
