package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vietravel/internal/models/response_models"
	"vietravel/internal/preferences"
)

// IntentClientInterface is the LLM collaborator: best-effort structured intent
// extraction plus natural-language reply generation. Callers must tolerate
// errors from both and fall back to deterministic behavior.
type IntentClientInterface interface {
	ExtractTravelPreferences(ctx context.Context, message string) (preferences.RawIntent, error)
	GenerateReply(ctx context.Context, message string, recs []response_models.Recommendation, intent preferences.RawIntent) (string, error)
}

const extractSystemPrompt = `Bạn là một AI chuyên phân tích yêu cầu du lịch của người dùng.
Hãy phân tích tin nhắn của người dùng và trích xuất các thông tin sau dưới dạng JSON:

{
    "month": số tháng (1-12) hoặc null,
    "temperature_preference": "mát" | "ôn hòa" | "nóng" | null,
    "rain_tolerance": "ít" | "vừa" | "nhiều" | null,
    "terrain_preference": "miền núi" | "ven biển" | "đồng bằng" | null,
    "activity_type": "nghỉ dưỡng" | "khám phá" | "thể thao" | "văn hóa" | null,
    "keywords": ["từ khóa quan trọng từ tin nhắn"]
}

Chỉ trả về JSON, không có text khác.`

const replySystemPrompt = `Bạn là một chatbot tư vấn du lịch thông minh cho Việt Nam.
Hãy trả lời một cách tự nhiên, thân thiện và hữu ích.
Sử dụng thông tin khuyến nghị để đưa ra lời khuyên cụ thể về địa điểm du lịch.
Giải thích tại sao những địa điểm này phù hợp với yêu cầu của người dùng.
Trả lời bằng tiếng Việt.`

func buildReplyPrompt(message string, recs []response_models.Recommendation, intent preferences.RawIntent) string {
	var rec strings.Builder
	rec.WriteString("Dựa trên yêu cầu của bạn, tôi khuyến nghị các địa điểm sau:\n\n")
	for i, r := range recs {
		fmt.Fprintf(&rec, "%d. %s (%s)\n", i+1, r.Name, r.Region)
		fmt.Fprintf(&rec, "   - Địa hình: %s\n", r.Terrain)
		fmt.Fprintf(&rec, "   - Độ phù hợp: %.1f/10\n\n", r.Score)
	}

	intentJSON, _ := json.Marshal(intent)

	return fmt.Sprintf(`Tin nhắn người dùng: %q

Sở thích đã phân tích: %s

Khuyến nghị địa điểm:
%s

Hãy trả lời một cách tự nhiên và hữu ích.`, message, intentJSON, rec.String())
}

// parseIntentJSON decodes an LLM extraction response, tolerating markdown
// fences and prose around the JSON object.
func parseIntentJSON(content string) (preferences.RawIntent, error) {
	cleaned := CleanJSONResponse(content)
	var intent preferences.RawIntent
	if err := json.Unmarshal([]byte(cleaned), &intent); err != nil {
		return preferences.RawIntent{}, fmt.Errorf("parse intent JSON: %w", err)
	}
	if intent.Month != nil && (*intent.Month < 1 || *intent.Month > 12) {
		intent.Month = nil
	}
	return intent, nil
}

// CleanJSONResponse strips markdown fencing and surrounding prose, returning
// the outermost JSON object found in the response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response
}

func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
