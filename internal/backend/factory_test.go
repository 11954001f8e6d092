package backend

import (
	"context"
	"testing"

	"spend/internal/config"
)

func TestFromAppConfig(t *testing.T) {
	cfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "./test.db",
	}

	backendCfg, err := FromAppConfig(cfg)
	if err != nil {
		t.Fatalf("FromAppConfig() error = %v", err)
	}
	if backendCfg.Type != SQLiteBackend {
		t.Errorf("FromAppConfig() Type = %v, want %v", backendCfg.Type, SQLiteBackend)
	}
	if backendCfg.SQLiteDBPath != "./test.db" {
		t.Errorf("FromAppConfig() SQLiteDBPath = %v, want ./test.db", backendCfg.SQLiteDBPath)
	}
}

func TestFromAppConfig_InvalidBackend(t *testing.T) {
	if _, err := FromAppConfig(&config.Config{DataBackend: "cassandra"}); err == nil {
		t.Error("FromAppConfig() expected error for unknown backend type")
	}
	if _, err := FromAppConfig(nil); err == nil {
		t.Error("FromAppConfig() expected error for nil config")
	}
}

func TestCreateStore_Memory(t *testing.T) {
	factory := NewFactory(nil)

	result, err := factory.CreateStore(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("CreateStore() error = %v", err)
	}
	if result.Store == nil {
		t.Fatal("CreateStore() returned nil store")
	}
	if err := result.Store.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestCreateStore_PostgresRequiresURL(t *testing.T) {
	factory := NewFactory(nil)

	_, err := factory.CreateStore(context.Background(), Config{Type: PostgresBackend})
	if err == nil {
		t.Error("CreateStore() expected error when DATABASE_URL is missing")
	}
}

func TestCreateStore_InvalidType(t *testing.T) {
	factory := NewFactory(nil)

	_, err := factory.CreateStore(context.Background(), Config{Type: "bogus"})
	if err == nil {
		t.Error("CreateStore() expected error for invalid backend type")
	}
}
