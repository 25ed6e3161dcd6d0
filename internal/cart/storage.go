package cart

import (
	"context"
	"errors"
)

// ErrNotFound indica que não existe carrinho persistido para a chave.
var ErrNotFound = errors.New("cart: key not found")

// Storage é o armazenamento durável chave-valor do carrinho.
// Falhas nunca devem atravessar a fronteira do Store (ver Store.Err).
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
