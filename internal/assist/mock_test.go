package assist

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestMockIdentifyScrapShape(t *testing.T) {
	m := NewMock(0)

	result, err := m.IdentifyScrap(context.Background(), []byte("fake image bytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("IdentifyScrap failed: %v", err)
	}
	if err := result.Validate(); err != nil {
		t.Errorf("mock identification missing documented fields: %v", err)
	}
}

func TestMockIdentifyScrapDeterministic(t *testing.T) {
	m := NewMock(0)
	image := []byte("the same upload")

	first, err := m.IdentifyScrap(context.Background(), image, "image/png")
	if err != nil {
		t.Fatalf("IdentifyScrap failed: %v", err)
	}
	second, err := m.IdentifyScrap(context.Background(), image, "image/png")
	if err != nil {
		t.Fatalf("IdentifyScrap failed: %v", err)
	}
	if first.ItemName != second.ItemName {
		t.Errorf("same image classified differently: %q vs %q", first.ItemName, second.ItemName)
	}
}

func TestMockCatalogHasNonRecyclableEntries(t *testing.T) {
	found := false
	for _, entry := range mockCatalog {
		if !entry.IsRecyclable {
			found = true
		}
	}
	if !found {
		t.Error("mock catalog should include at least one non-recyclable item")
	}
}

func TestMockEstimateValueNewspaper(t *testing.T) {
	m := NewMock(0)

	result, err := m.EstimateValue(context.Background(), "Newspaper", "5", "kg")
	if err != nil {
		t.Fatalf("EstimateValue failed: %v", err)
	}
	if err := result.Validate(); err != nil {
		t.Errorf("mock estimate missing documented fields: %v", err)
	}
	if !strings.HasPrefix(result.EstimatedValue, "₹") {
		t.Errorf("estimatedValue should begin with ₹, got %q", result.EstimatedValue)
	}
	if result.EnvironmentalImpact.Metric == "" || result.EnvironmentalImpact.Value == "" {
		t.Errorf("environmentalImpact not populated: %+v", result.EnvironmentalImpact)
	}
}

func TestMockEstimateValueDeterministic(t *testing.T) {
	m := NewMock(0)

	// Types matching more than one rate-table entry must still price
	// identically on every call.
	for _, scrapType := range []string{"Newspaper", "PET bottles", "Old paper"} {
		first, err := m.EstimateValue(context.Background(), scrapType, "5", "kg")
		if err != nil {
			t.Fatalf("EstimateValue(%q) failed: %v", scrapType, err)
		}
		for i := 0; i < 200; i++ {
			again, err := m.EstimateValue(context.Background(), scrapType, "5", "kg")
			if err != nil {
				t.Fatalf("EstimateValue(%q) failed: %v", scrapType, err)
			}
			if again.EstimatedValue != first.EstimatedValue {
				t.Fatalf("%q priced differently on run %d: %q vs %q",
					scrapType, i, first.EstimatedValue, again.EstimatedValue)
			}
		}
	}
}

func TestMockEstimateValuePrefersSpecificMaterial(t *testing.T) {
	m := NewMock(0)

	// 5 kg at the newspaper rate (14/kg), not the generic paper rate.
	result, err := m.EstimateValue(context.Background(), "Newspaper", "5", "kg")
	if err != nil {
		t.Fatalf("EstimateValue failed: %v", err)
	}
	if result.EstimatedValue != "₹63 - ₹77" {
		t.Errorf("newspaper should use its own rate, got %q", result.EstimatedValue)
	}
}

func TestMockEstimateValueUnits(t *testing.T) {
	m := NewMock(0)

	tests := []struct {
		name      string
		scrapType string
		weight    string
		unit      string
		wantErr   bool
	}{
		{"kilograms", "Copper wire", "2", "kg", false},
		{"grams", "copper", "500", "g", false},
		{"tonnes", "iron", "1", "ton", false},
		{"unknown material falls back to default rate", "mystery stuff", "3", "kg", false},
		{"non-numeric weight", "Newspaper", "a lot", "kg", true},
		{"zero weight", "Newspaper", "0", "kg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := m.EstimateValue(context.Background(), tt.scrapType, tt.weight, tt.unit)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("EstimateValue failed: %v", err)
			}
			if err := result.Validate(); err != nil {
				t.Errorf("estimate missing fields: %v", err)
			}
		})
	}
}

func TestMockConfirmationMessageIncludesName(t *testing.T) {
	m := NewMock(0)

	msg, err := m.ConfirmationMessage(context.Background(), "Priya")
	if err != nil {
		t.Fatalf("ConfirmationMessage failed: %v", err)
	}
	if !strings.Contains(msg, "Priya") {
		t.Errorf("confirmation should mention the name, got %q", msg)
	}
}

func TestMockConversationReplies(t *testing.T) {
	m := NewMock(0)
	conv, err := m.StartConversation(context.Background())
	if err != nil {
		t.Fatalf("StartConversation failed: %v", err)
	}

	reply, err := conv.Send(context.Background(), "What are your rates for newspaper?")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !strings.Contains(reply, "newspaper") {
		t.Errorf("expected the rates reply, got %q", reply)
	}

	reply, err = conv.Send(context.Background(), "something else entirely")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if reply == "" {
		t.Error("default reply should not be empty")
	}
}

func TestMockDelayHonorsContext(t *testing.T) {
	m := NewMock(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if _, err := m.IdentifyScrap(ctx, []byte("x"), "image/png"); err == nil {
		t.Error("expected context error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("canceled call should return immediately, took %v", elapsed)
	}
}
