package assist

import "fmt"

// chatSystemInstruction primes the support conversation once per session.
const chatSystemInstruction = `You are a friendly and helpful customer support agent for RecycLink, an online Kabaadiwala (scrap collection) service in India.

RecycLink lets people sell household scrap - newspaper, cardboard, plastic, metal, e-waste - from their doorstep. A verified Kabaadiwala partner picks the scrap up, weighs it on the spot, and pays instantly.

GUIDELINES:
1. Keep answers short (2-3 sentences) and conversational
2. Answer questions about scrap rates, pickup scheduling, accepted materials, and payments
3. Scrap rates vary by city and market; give rough per-kg figures in rupees when asked, and note they are indicative
4. If asked something unrelated to scrap collection, politely steer the conversation back
5. Never invent pickup bookings or order statuses; direct the user to the contact form instead`

// identifyPrompt asks for a classification of the uploaded photo. The
// structured-output schema enforces the field set; the prompt carries
// the semantics.
const identifyPrompt = `Look at this image of a scrap item and identify it.

INSTRUCTIONS:
1. itemName: a short name for the item (e.g. "Old Newspapers", "Copper Wire")
2. category: one of Paper, Plastic, Metal, E-Waste, Glass, Other
3. isRecyclable: whether a local Indian scrap collector would buy this item
4. estimatedPrice: an indicative resale rate in Indian rupees, e.g. "₹12-15 per kg"

OUTPUT FORMAT: Respond with ONLY a JSON object containing the fields itemName, category, isRecyclable, estimatedPrice.`

func estimatePrompt(scrapType, weight, unit string) string {
	return fmt.Sprintf(`Estimate the resale value of scrap for an Indian Kabaadiwala marketplace.

SCRAP: %s
WEIGHT: %s %s

INSTRUCTIONS:
1. estimatedValue: a rupee range for the whole lot, formatted like "₹60 - ₹75"
2. environmentalImpact: an object with a "metric" (e.g. "CO2 emissions saved") and a "value" (e.g. "9 kg") for recycling this lot
3. disclaimer: one sentence noting that actual rates depend on the local market and material condition

OUTPUT FORMAT: Respond with ONLY a JSON object containing the fields estimatedValue, environmentalImpact, disclaimer.`, scrapType, weight, unit)
}

func confirmationPrompt(name string) string {
	return fmt.Sprintf(`Write a warm two-sentence confirmation message for %s, who just scheduled a scrap pickup with RecycLink. Mention that a Kabaadiwala partner will call to fix a time. Respond with only the message text, no quotes.`, name)
}
