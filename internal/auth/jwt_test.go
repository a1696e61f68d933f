package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestJWTFlow(t *testing.T) {
	m, err := NewManager("test-secret-key-12345", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := m.GenerateToken(userID, email)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	gotID, gotEmail, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if gotID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, gotID)
	}
	if gotEmail != email {
		t.Fatalf("Expected email %s, got %s", email, gotEmail)
	}
}

func TestJWTRejections(t *testing.T) {
	m, _ := NewManager("test-secret-key-12345", time.Hour)

	if _, err := m.GenerateToken("", "x@y.z"); err == nil {
		t.Fatal("empty userID must be rejected")
	}
	if _, _, err := m.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}

	other, _ := NewManager("a-different-secret", time.Hour)
	token, _ := other.GenerateToken(uuid.New().String(), "")
	if _, _, err := m.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}

	if _, err := NewManager("", time.Hour); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}

func TestUnaryInterceptor(t *testing.T) {
	m, _ := NewManager("test-secret-key-12345", time.Hour)
	interceptor := m.UnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/outings.v1.OutingsService/ListOutings"}

	userID := uuid.New().String()
	token, _ := m.GenerateToken(userID, "")

	handler := func(ctx context.Context, _ any) (any, error) {
		got, ok := UserID(ctx)
		if !ok || got != userID {
			t.Fatalf("expected user id %s in context, got %q", userID, got)
		}
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))
	if _, err := interceptor(ctx, nil, info, handler); err != nil {
		t.Fatalf("authenticated call failed: %v", err)
	}

	noAuth := func(ctx context.Context, _ any) (any, error) { return "ok", nil }
	if _, err := interceptor(context.Background(), nil, info, noAuth); err == nil {
		t.Fatal("call without metadata must be rejected")
	}

	bad := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer bogus"))
	if _, err := interceptor(bad, nil, info, noAuth); err == nil {
		t.Fatal("call with invalid token must be rejected")
	}

	health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	if _, err := interceptor(context.Background(), nil, health, noAuth); err != nil {
		t.Fatalf("health check must bypass auth: %v", err)
	}
}
