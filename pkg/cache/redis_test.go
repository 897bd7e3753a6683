package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMissOnNil(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		err     error
		want    []byte
		wantHit bool
		wantErr bool
	}{
		{
			name:    "value present",
			data:    []byte("payload"),
			want:    []byte("payload"),
			wantHit: true,
		},
		{
			name: "redis.Nil is a miss",
			err:  redis.Nil,
		},
		{
			name:    "backend error surfaces",
			err:     errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, hit, err := missOnNil(tt.data, tt.err)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
			if string(data) != string(tt.want) {
				t.Errorf("data = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Port 1 is never a Redis server; the constructor must fail the ping
	// rather than hand back a dead cache.
	if _, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("NewRedisCache succeeded against an unreachable address")
	}
}
