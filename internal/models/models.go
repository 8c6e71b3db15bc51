package models

import (
	"fmt"
	"strings"
)

// Identification is the structured result of classifying a scrap photo.
type Identification struct {
	ItemName       string `json:"itemName"`
	Category       string `json:"category"`
	IsRecyclable   bool   `json:"isRecyclable"`
	EstimatedPrice string `json:"estimatedPrice"`
}

// Validate checks that an identification carries every documented field.
func (i *Identification) Validate() error {
	if strings.TrimSpace(i.ItemName) == "" {
		return fmt.Errorf("identification missing itemName")
	}
	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("identification missing category")
	}
	if strings.TrimSpace(i.EstimatedPrice) == "" {
		return fmt.Errorf("identification missing estimatedPrice")
	}
	return nil
}

// EnvironmentalImpact is one named figure, e.g. "CO2 emissions saved" / "9 kg".
type EnvironmentalImpact struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// Estimate is the structured result of a value calculation.
type Estimate struct {
	EstimatedValue      string              `json:"estimatedValue"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmentalImpact"`
	Disclaimer          string              `json:"disclaimer"`
}

// Validate checks that an estimate carries every documented field.
func (e *Estimate) Validate() error {
	if strings.TrimSpace(e.EstimatedValue) == "" {
		return fmt.Errorf("estimate missing estimatedValue")
	}
	if strings.TrimSpace(e.EnvironmentalImpact.Metric) == "" || strings.TrimSpace(e.EnvironmentalImpact.Value) == "" {
		return fmt.Errorf("estimate missing environmentalImpact")
	}
	if strings.TrimSpace(e.Disclaimer) == "" {
		return fmt.Errorf("estimate missing disclaimer")
	}
	return nil
}

// CalculateRequest is the calculator form submission.
type CalculateRequest struct {
	ScrapType string `json:"scrap_type"`
	Weight    string `json:"weight"`
	Unit      string `json:"unit"`
}

// ContactRequest is the pickup-scheduling form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ChatRequest is one chat widget message.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse carries the reply plus the session ID the client should
// send with its next message.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}
