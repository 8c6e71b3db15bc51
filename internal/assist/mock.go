package assist

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/recyclink/recyclink/internal/models"
)

// Mock produces deterministic synthetic answers so the site works with
// no API key at all. Every operation waits an artificial delay to keep
// the widgets' loading states honest.
type Mock struct {
	delay time.Duration
}

// NewMock creates a mock assistant with the given artificial delay.
func NewMock(delay time.Duration) *Mock {
	return &Mock{delay: delay}
}

// Name returns the provider name.
func (m *Mock) Name() string { return "mock" }

// Close is a no-op.
func (m *Mock) Close() error { return nil }

func (m *Mock) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mockCatalog is the fixed set of identifications the mock picks from.
var mockCatalog = []models.Identification{
	{ItemName: "Old Newspapers", Category: "Paper", IsRecyclable: true, EstimatedPrice: "₹12-15 per kg"},
	{ItemName: "Cardboard Boxes", Category: "Paper", IsRecyclable: true, EstimatedPrice: "₹7-9 per kg"},
	{ItemName: "PET Bottles", Category: "Plastic", IsRecyclable: true, EstimatedPrice: "₹10-14 per kg"},
	{ItemName: "Copper Wire", Category: "Metal", IsRecyclable: true, EstimatedPrice: "₹400-450 per kg"},
	{ItemName: "Old Laptop", Category: "E-Waste", IsRecyclable: true, EstimatedPrice: "₹300-800 per piece"},
	{ItemName: "Iron Scrap", Category: "Metal", IsRecyclable: true, EstimatedPrice: "₹24-28 per kg"},
	{ItemName: "Ceramic Crockery", Category: "Other", IsRecyclable: false, EstimatedPrice: "₹0"},
	{ItemName: "Broken Thermocol", Category: "Other", IsRecyclable: false, EstimatedPrice: "₹0"},
}

// IdentifyScrap picks a catalog entry by hashing the image bytes, so the
// same upload always classifies the same way.
func (m *Mock) IdentifyScrap(ctx context.Context, image []byte, mimeType string) (*models.Identification, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	h := fnv.New32a()
	h.Write(image)
	entry := mockCatalog[int(h.Sum32())%len(mockCatalog)]
	return &entry, nil
}

// scrapRates is the mock price table in rupees per kilogram. Matched in
// order, so specific materials sit above the generic terms they contain
// ("newspaper" before "paper") and the same input always prices the same.
var scrapRates = []struct {
	material string
	rate     float64
}{
	{"newspaper", 14},
	{"cardboard", 8},
	{"bottle", 11},
	{"plastic", 12},
	{"paper", 12},
	{"copper", 425},
	{"brass", 305},
	{"aluminium", 110},
	{"aluminum", 110},
	{"steel", 32},
	{"iron", 26},
	{"e-waste", 40},
	{"laptop", 40},
	{"glass", 2},
}

const defaultRatePerKg = 10

// EstimateValue computes a rupee range from the rate table.
func (m *Mock) EstimateValue(ctx context.Context, scrapType, weight, unit string) (*models.Estimate, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || w <= 0 {
		return nil, fmt.Errorf("invalid weight %q", weight)
	}

	kg := w
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gram", "grams":
		kg = w / 1000
	case "ton", "tons", "tonne", "tonnes":
		kg = w * 1000
	case "quintal", "quintals":
		kg = w * 100
	}

	rate := float64(defaultRatePerKg)
	lower := strings.ToLower(scrapType)
	for _, sr := range scrapRates {
		if strings.Contains(lower, sr.material) {
			rate = sr.rate
			break
		}
	}

	base := kg * rate
	co2 := kg * 1.8 // rough kg of CO2 saved per kg recycled

	return &models.Estimate{
		EstimatedValue: fmt.Sprintf("₹%.0f - ₹%.0f", base*0.9, base*1.1),
		EnvironmentalImpact: models.EnvironmentalImpact{
			Metric: "CO2 emissions saved",
			Value:  fmt.Sprintf("%.1f kg", co2),
		},
		Disclaimer: "Actual rates depend on your local market and the condition of the material.",
	}, nil
}

// ConfirmationMessage returns a canned personalized confirmation.
func (m *Mock) ConfirmationMessage(ctx context.Context, name string) (string, error) {
	if err := m.wait(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Thank you, %s! Your pickup request has been received. A Kabaadiwala partner will call you shortly to fix a time.", name), nil
}

// StartConversation opens a keyword-matching canned conversation.
func (m *Mock) StartConversation(ctx context.Context) (Conversation, error) {
	return &mockConversation{mock: m}, nil
}

type mockConversation struct {
	mu   sync.Mutex
	mock *Mock
}

// cannedReplies map a lowercase keyword to a reply; checked in order.
var cannedReplies = []struct {
	keyword string
	reply   string
}{
	{"rate", "Rates vary by city, but roughly: newspaper ₹12-15/kg, cardboard ₹7-9/kg, iron ₹24-28/kg, copper ₹400+/kg. These are indicative only."},
	{"price", "Rates vary by city, but roughly: newspaper ₹12-15/kg, cardboard ₹7-9/kg, iron ₹24-28/kg, copper ₹400+/kg. These are indicative only."},
	{"pickup", "You can schedule a doorstep pickup through the contact form on this page. A Kabaadiwala partner will call you to fix a time."},
	{"pay", "Our partners pay on the spot, right after weighing - cash or UPI, whichever you prefer."},
	{"plastic", "Yes, we collect plastic! PET bottles, containers and hard plastic all have resale value."},
	{"hello", "Hello! I'm the RecycLink assistant. Ask me about scrap rates, pickups, or what we collect."},
	{"hi", "Hello! I'm the RecycLink assistant. Ask me about scrap rates, pickups, or what we collect."},
}

func (c *mockConversation) Send(ctx context.Context, message string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mock.wait(ctx); err != nil {
		return "", err
	}

	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		if strings.Contains(lower, canned.keyword) {
			return canned.reply, nil
		}
	}
	return "We collect paper, plastic, metal and e-waste from your doorstep and pay instantly. Is there anything specific you'd like to know?", nil
}
