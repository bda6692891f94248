package schedule

import "fmt"

// User-facing messages.
const (
	MessageNoInput      = "No input provided"
	MessageLocked       = "⚠ Schedule locked. No more edits allowed."
	MessageStored       = "Schedule stored. One edit remaining."
	MessageFinalEdit    = "✅ Schedule updated (final edit). Locked now."
	MessageResetOK      = "✅ Reset successful"
	MessageWrongPass    = "❌ Wrong password"
	ErrorMessagePrefix  = "Error: "
	NoValidTasksMessage = "No valid tasks found"
)

// promptTemplate asks for 30-minute slots in the strict format the parser expects.
const promptTemplate = `
Create a clean daily schedule from this input:
%s

Rules:
- Use 30 minute slots
- Format strictly as:
9:00 am - 9:30 am: Task
- Cover the whole day
`

// BuildPrompt embeds the user's description in the schedule prompt.
func BuildPrompt(input string) string {
	return fmt.Sprintf(promptTemplate, input)
}
