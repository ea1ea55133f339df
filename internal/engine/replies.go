package engine

// Fixed learner-visible strings. Internal errors are never surfaced
// verbatim; every failure the learner sees is one of these or the tutor's
// busy sentinel.
const (
	// ReplySlowDown is returned by the rate limiter. Distinct from the
	// silent busy-flag drop.
	ReplySlowDown = "You're sending messages a little fast. Give me a second, then try again."

	// ReplyCorrection asks for usable input after a malformed message.
	ReplyCorrection = "I didn't catch that. Could you try again?"

	// ReplyNotAwaiting nudges the learner when there is no open question.
	ReplyNotAwaiting = "There's no open question right now. Say \"next\" to continue."

	// ReplyCourseFinished is sent for any advance after completion.
	ReplyCourseFinished = "You've finished this course. Start a new topic whenever you're ready."

	// ReplyNoActivePlan is sent when the learner advances before starting.
	ReplyNoActivePlan = "We haven't started a topic yet. Tell me what you'd like to learn."

	// ReplyFallbackNotice prefixes the first dynamic step after a catalog miss.
	ReplyFallbackNotice = "I don't have a ready-made lesson for that, so I'll teach it step by step."

	// ReplyGoodbye acknowledges an explicit exit.
	ReplyGoodbye = "Okay, pausing here. Your progress is saved."

	// ReplyCorrect and ReplyIncorrect prefix static quiz feedback.
	ReplyCorrect   = "That's right!"
	ReplyIncorrect = "Not quite."
)

// Reply is the outcome of one engine operation. Silent means the transport
// must send nothing at all (busy-flag collision).
type Reply struct {
	Text   string
	Silent bool
}

func silent() Reply {
	return Reply{Silent: true}
}

func say(text string) Reply {
	return Reply{Text: text}
}
