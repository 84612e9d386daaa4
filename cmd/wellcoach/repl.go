package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/wellcoach/coach"
	"github.com/hupe1980/wellcoach/core"
)

const (
	coachPrefix = "🩺 Dr. Wellness: "
	farewell    = "Take care of yourself! Remember, wellness is a journey, not a destination. Come back anytime! 🌟"
	freshStart  = "Let's start fresh! How can I help you with your wellness journey today?"

	greeting        = "Hello! I'm excited to be your wellness coach with access to current health research. How can I help you on your health journey today?"
	profileFollowUp = "I've updated your profile! Now I can provide more personalized guidance. What would you like to focus on first?"
)

// repl is the line-oriented command loop around a Coach.
type repl struct {
	coach   *coach.Coach
	scanner *bufio.Scanner
	out     io.Writer
}

func newREPL(c *coach.Coach, in io.Reader, out io.Writer) *repl {
	return &repl{coach: c, scanner: bufio.NewScanner(in), out: out}
}

// Run reads commands until exit or end of input.
func (r *repl) Run(ctx context.Context) error {
	r.banner()
	r.say(ctx, greeting)
	for {
		input, ok := r.ask("\nYou: ")
		if !ok {
			r.println("\n" + coachPrefix + farewell)
			return r.scanner.Err()
		}
		if done := r.handle(ctx, input); done {
			return nil
		}
	}
}

func (r *repl) banner() {
	r.println(strings.Repeat("=", 70))
	r.println(" DR. WELLNESS - Your Personal Health & Wellness Coach")
	r.println(strings.Repeat("=", 70))
	r.println("Commands: setup, goals, complete <n>, track, progress, search <query>,")
	r.println("          save [name], load <file>, sessions, clear, history, exit")
}

// handle executes one input line and reports whether the loop should stop.
func (r *repl) handle(ctx context.Context, input string) bool {
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "":
		return false
	case "exit", "quit", "bye":
		r.println("\n" + coachPrefix + farewell)
		return true
	case "setup":
		r.setup()
		r.say(ctx, profileFollowUp)
	case "goals":
		r.goals()
	case "complete":
		r.complete(arg)
	case "track":
		r.track()
	case "progress":
		r.progress()
	case "search":
		if arg == "" {
			arg, _ = r.ask("What would you like to search for? ")
		}
		if arg != "" {
			r.println("\n" + r.coach.Search(ctx, arg))
		}
	case "save":
		if name, err := r.coach.Save(ctx, arg); err != nil {
			r.println("\n💾 Error saving session: " + err.Error())
		} else {
			r.println("\n💾 Wellness session saved to " + name)
		}
	case "load":
		if arg == "" {
			arg, _ = r.ask("Enter filename: ")
		}
		if arg == "" {
			return false
		}
		if err := r.coach.Load(ctx, arg); err != nil {
			r.println("\n📁 Error loading session: " + err.Error())
		} else {
			r.println("\n📁 Wellness session loaded from " + arg)
		}
	case "sessions":
		r.sessions(ctx)
	case "clear":
		r.coach.ClearConversation()
		r.println("\n🔄 Conversation cleared! Starting fresh.")
		r.say(ctx, freshStart)
	case "history":
		r.history()
	default:
		r.say(ctx, input)
	}
	return false
}

func (r *repl) setup() {
	r.println("\n🌟 Let's set up your wellness profile! You can skip any question.")
	var a coach.ProfileAnswers
	a.Age, _ = r.ask("What's your age? (optional): ")
	a.ActivityLevel, _ = r.ask("How would you describe your current activity level? (sedentary/lightly active/moderately active/very active): ")
	a.PrimaryGoal, _ = r.ask("What's your main wellness goal? (e.g., lose weight, build muscle, reduce stress, improve sleep): ")
	a.DietaryPreferences, _ = r.ask("Any dietary preferences or restrictions? (e.g., vegetarian, keto, allergies): ")
	a.HealthNotes, _ = r.ask("Any health conditions I should be aware of? (optional): ")
	r.coach.SetupProfile(a)
	r.println("Profile created! I'll use this information to provide personalized guidance.")
}

func (r *repl) goals() {
	goals := r.coach.State().Goals()
	if len(goals) == 0 {
		r.println("\nNo goals set yet. Let's create some!")
		if text, _ := r.ask("What wellness goal would you like to set? "); text != "" {
			r.coach.State().AddGoal(text, nil, "")
			r.println("Goal added: " + text)
		}
		return
	}
	r.println("\n🎯 Your Wellness Goals:")
	for i, g := range goals {
		marker := "🎯"
		if g.Status == core.GoalCompleted {
			marker = "✅"
		}
		r.printf("   %d. %s %s (%s) - %s\n", i+1, marker, g.Text, g.Category, g.Status)
	}
}

func (r *repl) complete(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		r.println("Usage: complete <goal number>")
		return
	}
	if err := r.coach.State().CompleteGoal(n - 1); err != nil {
		r.println("Could not complete goal: " + err.Error())
		return
	}
	r.printf("Goal %d completed. Great work!\n", n)
}

func (r *repl) track() {
	r.println("\nDaily Wellness Tracking")
	r.println("Examples: water intake, steps, mood (1-10), sleep hours, exercise minutes")
	metric, _ := r.ask("Metric: ")
	if metric == "" {
		return
	}
	value, _ := r.ask(fmt.Sprintf("Value for %s: ", metric))
	if value == "" {
		return
	}
	r.coach.State().TrackMetric(metric, value, "")
	r.printf("Tracked: %s = %s\n", metric, value)
}

func (r *repl) progress() {
	s := r.coach.State().ProgressSummary()
	r.println("\nYour Wellness Progress:")
	r.printf("   Active Goals: %d\n", s.ActiveGoals)
	r.printf("   Completed Goals: %d\n", s.CompletedGoals)
	r.printf("   Days Tracked: %d\n", s.TrackingDays)
	if len(s.RecentActivity) > 0 {
		r.printf("   Recent Activity: %s\n", strings.Join(s.RecentActivity, ", "))
	}
}

func (r *repl) sessions(ctx context.Context) {
	names, err := r.coach.Sessions(ctx)
	if err != nil {
		r.println("\n📂 Error listing sessions: " + err.Error())
		return
	}
	if len(names) == 0 {
		r.println("\n📂 No saved sessions yet.")
		return
	}
	r.println("\n📂 Saved sessions:")
	for _, name := range names {
		r.println("   - " + name)
	}
}

func (r *repl) history() {
	history := r.coach.History()
	r.printf("\n📜 Recent Conversations (%d total):\n", len(history))
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	for i, ex := range history {
		r.printf("   %d. You: %s...\n", i+1, preview(ex.User, 60))
		r.printf("      Dr. Wellness: %s...\n", preview(ex.Agent, 60))
	}
}

// say runs a chat turn and prints the coach's reply.
func (r *repl) say(ctx context.Context, text string) {
	r.println("\n" + coachPrefix + r.coach.Chat(ctx, text))
}

func (r *repl) ask(promptText string) (string, bool) {
	fmt.Fprint(r.out, promptText)
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

func (r *repl) println(s string) { fmt.Fprintln(r.out, s) }

func (r *repl) printf(format string, args ...any) { fmt.Fprintf(r.out, format, args...) }

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
