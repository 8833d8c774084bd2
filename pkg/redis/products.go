package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"julianmorley.ca/shop/storefront/pkg/models"
)

const productCacheTTL = 24 * time.Hour

// CacheProduct stores a single product under product:{hex id}.
func CacheProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID.Hex(), err)
	}

	productKey := fmt.Sprintf("product:%s", product.ID.Hex())
	if err := client.Set(ctx, productKey, productJSON, productCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache product %s: %w", product.ID.Hex(), err)
	}

	return nil
}

func GetProductFromCache(ctx context.Context, id string) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productKey := fmt.Sprintf("product:%s", id)
	productJSON, err := client.Get(ctx, productKey).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}
