package generator

import "fmt"

const systemPrompt = `You are a quizmaster writing multiple-choice trivia questions.

Rules:
- Write a single self-contained question about the given topic.
- Provide exactly 4 options where exactly one is correct. Distractors
  should be plausible, not obviously wrong.
- The "answer" field must repeat the correct option verbatim.
- The explanation should briefly say why the answer is correct.
- Do not number or letter the options; plain text only.`

func userPrompt(topic string) string {
	return fmt.Sprintf("Create a unique and challenging multiple-choice question about %s.", topic)
}
