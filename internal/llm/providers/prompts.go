package providers

import (
	"fmt"
	"strings"

	genai "github.com/jason-ezenwa/reddit-mastermind/internal/llm"
)

// buildPostPrompt renders the post-generation prompt. The persona backstory
// seeds voice, the keywords must appear naturally, and the company is
// context only; posts read as organic discussion, not advertising copy.
func buildPostPrompt(req genai.PostRequest) string {
	var b strings.Builder

	b.WriteString("You are writing a Reddit post as a specific person. Stay fully in character.\n\n")

	fmt.Fprintf(&b, "PERSONA\nUsername: %s\nBackstory: %s\n\n", req.Persona.Username, req.Persona.Backstory)
	fmt.Fprintf(&b, "SUBREDDIT: %s\n\n", req.Subreddit)

	b.WriteString("KEYWORDS (work these in naturally, do not list them):\n")
	for _, k := range req.Keywords {
		fmt.Fprintf(&b, "- %s\n", k.Text)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "COMPANY CONTEXT (background only, never write ad copy):\nName: %s\nWebsite: %s\nDescription: %s\n\n",
		req.Company.Name, req.Company.Website, req.Company.Description)

	if req.ICPSegment != "" {
		fmt.Fprintf(&b, "The post should resonate with a %s audience.\n\n", req.ICPSegment)
	}

	b.WriteString("Write a post that feels like a genuine question, experience or discussion starter from this persona. ")
	b.WriteString("It must fit the subreddit's culture and must not read as marketing.\n\n")
	b.WriteString(`Respond with only a JSON object: {"title": "...", "body": "..."}`)

	return b.String()
}

// buildCommentPrompt renders the comment-generation prompt for first, reply
// and late positions.
func buildCommentPrompt(req genai.CommentRequest) string {
	var b strings.Builder

	b.WriteString("You are writing a Reddit comment as a specific person. Stay fully in character.\n\n")

	fmt.Fprintf(&b, "PERSONA\nUsername: %s\nBackstory: %s\n\n", req.Persona.Username, req.Persona.Backstory)
	fmt.Fprintf(&b, "POST by u/%s\nTitle: %s\nBody: %s\n\n", req.Post.AuthorUsername, req.Post.Title, req.Post.Body)

	if req.Parent != nil {
		fmt.Fprintf(&b, "You are replying to this comment by u/%s:\n%s\n\n", req.Parent.Username, req.Parent.Text)
	}

	switch req.Position {
	case genai.PositionFirst:
		b.WriteString("You are the first commenter. Respond directly to the post.\n")
	case genai.PositionReply:
		b.WriteString("Respond to the parent comment, not just the post.\n")
	case genai.PositionLate:
		b.WriteString("You arrived hours later. Add a fresh angle the thread has not covered.\n")
	}

	if req.MentionCompany {
		fmt.Fprintf(&b, "If it fits naturally, mention %s the way a real user would recommend something they use. Never sound like an ad.\n",
			req.Company.Name)
	} else {
		b.WriteString("Do not mention any company or product by name.\n")
	}

	b.WriteString("\nKeep it short and conversational, like a real Reddit comment.\n\n")
	b.WriteString(`Respond with only a JSON object: {"text": "..."}`)

	return b.String()
}
