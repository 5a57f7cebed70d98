package llm

func BuildStructurePrompt(ocrText string) string {
	return `
You are a data extraction engine.

Your task:
- Convert the OCR text of a restaurant menu into STRICT JSON.
- Keep the merchant's own wording: do NOT rewrite, translate or reorder items.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.

If you cannot extract data, return this exact JSON:
{
  "items": []
}

Required JSON schema:
{
  "items": [
    {
      "name": "string",
      "section": "string or null",
      "price": "number or null",
      "description": "string or null"
    }
  ]
}

OCR TEXT:
` + ocrText
}
