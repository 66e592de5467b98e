package proxy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupplier_Empty(t *testing.T) {
	s := NewSupplier(context.Background(), nil, "http://api.test", nil)
	assert.Empty(t, s.Get())
}

func TestSupplier_FiltersAndRotates(t *testing.T) {
	check := func(_ context.Context, proxyURL, _ string) bool {
		return proxyURL != "http://bad:8080"
	}

	s := NewSupplier(context.Background(),
		[]string{"http://a:8080", "http://bad:8080", "http://b:8080"},
		"http://api.test", check)

	assert.Equal(t, "http://a:8080", s.Get())
	assert.Equal(t, "http://b:8080", s.Get())
	assert.Equal(t, "http://a:8080", s.Get())
}

func TestSupplier_AllInvalid(t *testing.T) {
	s := NewSupplier(context.Background(), []string{"http://x:1"}, "http://api.test",
		func(context.Context, string, string) bool { return false })
	assert.Empty(t, s.Get())
}
