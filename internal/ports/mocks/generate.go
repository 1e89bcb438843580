//go:generate mockgen -source=../gateways.go      -destination=./mock_gateways.go      -package=mocks
//go:generate mockgen -source=../product_cache.go -destination=./mock_product_cache.go -package=mocks
//go:generate mockgen -source=../order_cache.go   -destination=./mock_order_cache.go   -package=mocks
//go:generate mockgen -source=../logger.go        -destination=./mock_logger.go        -package=mocks

package mocks
