package generator

import "github.com/quizdeck/quizdeck/internal/llm"

// QuestionSchema is the structured-output schema for generated
// questions.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The quiz question text",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "A list of 4 possible answers",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer (must be one of the options)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of why the answer is correct",
			},
		},
		"required":             []any{"question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
