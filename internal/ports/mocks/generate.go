//go:generate mockgen -source=../cart_client.go     -destination=./mock_cart_client.go     -package=mocks
//go:generate mockgen -source=../wishlist_client.go -destination=./mock_wishlist_client.go -package=mocks
//go:generate mockgen -source=../search_client.go   -destination=./mock_search_client.go   -package=mocks
//go:generate mockgen -source=../bank_client.go     -destination=./mock_bank_client.go     -package=mocks
//go:generate mockgen -source=../payment_client.go  -destination=./mock_payment_client.go  -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks

package mocks
