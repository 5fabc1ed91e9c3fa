package llm

import (
	"encoding/json"
	"fmt"
)

const (
	systemRFPAnalyst   = "You are an expert RFP analyst. Always return valid JSON."
	systemProposal     = "You are an expert proposal parser. Always return valid JSON."
	systemEvaluator    = "You are an expert procurement evaluator. Always return valid JSON."
	systemEmailDrafter = "You are an expert at writing professional RFP emails."
)

func rfpPrompt(naturalLanguageInput string) string {
	return fmt.Sprintf(`
You are an expert procurement manager. Convert the following natural language procurement need into a structured RFP format.

User Input:
%s

Please extract and structure the following information:
1. Title: A concise title for the RFP
2. Requirements: A detailed breakdown of what's needed (items, quantities, specifications)
3. Budget: Total budget allocated (if mentioned)
4. Deadline: Delivery/completion deadline (if mentioned)
5. Payment Terms: Payment terms specified
6. Warranty/Support: Any warranty or support requirements

Return ONLY a valid JSON object with this exact structure:
{
    "title": "RFP Title",
    "requirements": {
        "items": [
            {"name": "laptop", "quantity": 50, "specifications": "16GB RAM"}
        ],
        "delivery_timeline": "30 days",
        "payment_terms": "net 30",
        "warranty": "1 year"
    },
    "budget": 100000,
    "deadline": "2026-02-15"
}

Do not add extra fields or explanations. Just the JSON.
`, naturalLanguageInput)
}

func proposalPrompt(proposalContent string) string {
	return fmt.Sprintf(`
You are an expert at parsing vendor proposals. Extract key information from the following vendor proposal:

Proposal Content:
%s

Extract the following information if available:
1. Price/Cost (exact number, or estimated range)
2. Delivery Time (days, weeks, or specific date)
3. Warranty Period
4. Payment Terms
5. Key Features/Specifications Offered
6. Any special conditions or notes

Return ONLY a valid JSON object with this structure:
{
    "price": null or number,
    "price_currency": "USD" or detected currency,
    "delivery_time": "string describing timeline",
    "warranty": "warranty details",
    "payment_terms": "payment terms",
    "specifications": {"key": "value"},
    "special_conditions": "any special notes"
}
`, proposalContent)
}

func evaluationPrompt(requirements map[string]any, proposals []map[string]any) string {
	requirementsJSON, _ := json.MarshalIndent(requirements, "", "  ")
	proposalsJSON, _ := json.MarshalIndent(proposals, "", "  ")

	return fmt.Sprintf(`
You are an expert procurement evaluator. Compare the following vendor proposals against the RFP requirements.

RFP Requirements:
%s

Vendor Proposals:
%s

For each proposal, provide:
1. Compliance Score (0-100): How well does it meet requirements?
2. Price Competitiveness Score (0-100): How competitive is the pricing?
3. Risk Assessment: Any risks or concerns?
4. Overall Score (0-100): Combined evaluation

Then provide:
5. Summary: Brief overview of all proposals
6. Recommendation: Which vendor to award, and why?

Return ONLY a valid JSON object with this structure:
{
    "evaluations": {
        "vendor_name_1": {
            "compliance_score": number,
            "price_competitiveness": number,
            "risk_assessment": "string",
            "score": number,
            "notes": "string"
        }
    },
    "summary": "Overall summary of proposals",
    "recommendation": "Recommended vendor and rationale"
}
`, requirementsJSON, proposalsJSON)
}

func emailBodyPrompt(rfpTitle string, requirements map[string]any) string {
	requirementsJSON, _ := json.MarshalIndent(requirements, "", "  ")

	return fmt.Sprintf(`
Generate a professional, clear, and concise RFP email to be sent to vendors.

RFP Title: %s

Requirements:
%s

The email should:
1. Briefly introduce the procurement need
2. List key requirements clearly
3. Include budget and timeline if available
4. Request specific information in the response
5. Include contact information placeholder
6. Be professional and clear

Return ONLY the email body text, no subject line.
`, rfpTitle, requirementsJSON)
}
