package tutor

import (
	"fmt"
	"strings"

	"github.com/tsarev/lernio/internal/profile"
)

// safetyDisclaimer is appended to every system prompt. It is clipped to
// disclaimerMaxChars so prompt growth stays bounded.
const safetyDisclaimer = "Always remind the learner, briefly and only when relevant, that this is general education and their care team's instructions come first."

const disclaimerMaxChars = 160

func cappedDisclaimer() string {
	runes := []rune(safetyDisclaimer)
	if len(runes) <= disclaimerMaxChars {
		return safetyDisclaimer
	}
	return string(runes[:disclaimerMaxChars])
}

func buildSystemPrompt(p profile.Profile, maxReplyChars int) string {
	var b strings.Builder

	b.WriteString("You are a patient, encouraging diabetes educator talking to a learner in a chat. ")
	b.WriteString(toneFor(p.AgeBand))
	b.WriteString(" ")
	b.WriteString(exampleHintFor(p.TherapyType))
	b.WriteString(" ")
	b.WriteString(depthFor(p.KnowledgeLevel))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Keep every reply under %d characters and at most two sentences. Ask at most one question per reply. Plain text only, no markdown.\n", maxReplyChars))
	b.WriteString(cappedDisclaimer())

	return b.String()
}

func toneFor(band profile.AgeBand) string {
	switch band {
	case profile.AgeBandChild:
		return "Use very simple words and a warm, playful tone."
	case profile.AgeBandTeen:
		return "Use a friendly, direct tone without talking down."
	case profile.AgeBandOlder:
		return "Use a calm, unhurried tone and avoid jargon."
	default:
		return "Use a clear, respectful everyday tone."
	}
}

func exampleHintFor(t profile.TherapyType) string {
	switch t {
	case profile.TherapyInsulin:
		return "Prefer examples involving insulin dosing and injection routines."
	case profile.TherapyTablets:
		return "Prefer examples involving oral medication routines."
	case profile.TherapyLifestyle:
		return "Prefer examples involving food choices and activity."
	default:
		return "Use a mix of medication and lifestyle examples."
	}
}

func depthFor(level profile.KnowledgeLevel) string {
	switch level {
	case profile.LevelIntermediate:
		return "You may assume basic familiarity with common terms."
	case profile.LevelAdvanced:
		return "You may assume solid prior knowledge and go into mechanisms."
	default:
		return "Assume no prior knowledge and define every term."
	}
}

func buildStepUserMessage(in StepInput, maxSummaryChars int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	if in.Goal != "" {
		b.WriteString(fmt.Sprintf("Goal: %s\n", in.Goal))
	}
	b.WriteString(fmt.Sprintf("Step number: %d\n", in.StepIdx+1))

	if summary := truncate(in.PriorSummary, maxSummaryChars); summary != "" {
		b.WriteString(fmt.Sprintf("\nWhat the learner has covered so far:\n%s\n", summary))
	}

	b.WriteString(`
Instructions:
Teach the next small piece of this topic. Build on what was covered, do not repeat it. End with one short check-in question the learner can answer in a sentence.`)

	return b.String()
}

func buildEvalUserMessage(in EvalInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	b.WriteString(fmt.Sprintf("\nWhat the learner was just taught:\n%s\n", in.LastStepText))
	b.WriteString(fmt.Sprintf("\nLearner's answer:\n%s\n", in.Answer))

	b.WriteString(`
Instructions:
Judge whether the answer shows the learner understood the step. Minor wording issues do not matter; judge the idea. Give one or two sentences of feedback: confirm what was right, gently correct what was wrong.`)

	return b.String()
}

func buildPlanUserMessage(topic string, p profile.Profile, cfg PlannerConfig) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Learner: %s, %s therapy, %s level\n", p.AgeBand, p.TherapyType, p.KnowledgeLevel))

	b.WriteString(fmt.Sprintf(`
Instructions:
Design a short learning plan for this topic with %d to %d modules. Each module needs a short title and a one-sentence objective. Order modules from foundations to application. State one overall goal for the plan in a single sentence.`,
		cfg.MinModules, cfg.MaxModules))

	return b.String()
}

const planSystemPrompt = `You are designing a short diabetes-education curriculum for one learner. Plans must be realistic for chat delivery: each module is taught in a handful of two-sentence steps.`

const summarySystemPrompt =`You are summarizing a tutoring conversation so the next lesson step can build on it. Capture what was taught and how the learner responded, without losing corrections the learner still needs.`

func buildSummaryUserMessage(raw string) string {
	var b strings.Builder

	b.WriteString("Conversation notes:\n")
	b.WriteString(raw)
	b.WriteString(`

Instructions:
Compress these notes into 2-3 sentences. Keep: concepts already covered, anything the learner got wrong, and anything promised for later. Drop greetings and repetition. Factual tone, no encouragement.`)

	return b.String()
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
