package credentials

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_Retrieve(t *testing.T) {
	p := NewStaticProvider("AKIAEXAMPLE", "s3cr3t")

	creds, err := p.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "s3cr3t", creds.SecretAccessKey)
	assert.Empty(t, creds.SessionToken)
	assert.Equal(t, StaticProviderName, creds.Source)
	assert.False(t, creds.CanExpire)
	assert.False(t, creds.Expired())
	assert.True(t, creds.HasKeys())
}

func TestStaticProvider_IgnoresCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	creds, err := NewStaticProvider("k", "s").Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k", creds.AccessKeyID)
}

func TestStaticProvider_ConcurrentRetrieve(t *testing.T) {
	p := NewStaticProvider("k", "s")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			creds, err := p.Retrieve(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "s", creds.SecretAccessKey)
		}()
	}
	wg.Wait()
}

func TestStaticProvider_StringRedactsSecret(t *testing.T) {
	p := NewStaticProvider("AKIAEXAMPLE", "hunter2")

	assert.Equal(t, "StaticProvider(AKIAEXAMPLE)", p.String())
	assert.NotContains(t, fmt.Sprintf("%v", p), "hunter2")
}
