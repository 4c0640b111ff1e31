package walink

import "testing"

func TestDeepLink(t *testing.T) {
	t.Run("with phone", func(t *testing.T) {
		got := DeepLink("98765 43210", "hello order")
		want := "https://wa.me/919876543210?text=hello%20order"
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("without valid phone", func(t *testing.T) {
		got := DeepLink("123", "hi")
		if got != "https://wa.me/?text=hi" {
			t.Fatalf("expected phoneless link, got %s", got)
		}
	})

	t.Run("newlines and symbols encoded", func(t *testing.T) {
		got := DeepLink("9876543210", "*Total: ₹96*\nThanks")
		want := "https://wa.me/919876543210?text=%2ATotal%3A%20%E2%82%B996%2A%0AThanks"
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
