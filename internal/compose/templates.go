package compose

import "haikommit/internal/intent"

// Slot marks where a keyword is placed in a template.
const Slot = "{}"

// templateSet holds the templates of one intent. keyword[i] are the
// candidate templates for line i; generic[i] are fixed lines that always
// scan exactly to the line target.
type templateSet struct {
	keyword [3][]string
	generic [3][2]string
}

var templates = map[intent.Intent]templateSet{
	intent.Fix: {
		keyword: [3][]string{
			{"{} was broken", "Bug found in {}", "{} and {} mended", "Broken {} fixed"},
			{"The {} no longer breaks", "Patched the {} inside {}", "A quiet fix for {} code", "Traced the fault to {} and {}"},
			{"{} works again", "Now {} holds", "{} rests easy", "Calm returns to {}"},
		},
		generic: [3][2]string{
			{"Bug fixed in the code", "A small crack is found"},
			{"A quiet crack is sealed now", "The fault is traced and mended"},
			{"All is well again", "Peace returns at last"},
		},
	},
	intent.Feature: {
		keyword: [3][]string{
			{"New {} arrives", "{} and {} bloom", "Fresh {} added", "Behold, new {}"},
			{"The {} now lends a hand", "Planted {} beside {}", "A new path through {} opens", "Built {} from the ground up"},
			{"{} is here", "Ready for {}", "{} takes root", "Now {} grows"},
		},
		generic: [3][2]string{
			{"New feature arrives", "A fresh idea"},
			{"Something new begins to grow", "A seedling breaks through the ground"},
			{"Ready to be used", "Spring has come at last"},
		},
	},
	intent.Refactor: {
		keyword: [3][]string{
			{"{} reshaped", "Tidied {} code", "{} and {} pruned", "Cleaner {} now"},
			{"The {} found a cleaner form", "Untangled {} from {}", "Same behavior, leaner {}", "Gentle hands reshape the {}"},
			{"{} breathes now", "Leaner {} stands", "{} is clear", "Order in {}"},
		},
		generic: [3][2]string{
			{"Code cleaned up with care", "Old knots come undone"},
			{"Structure improved throughout here", "The same path, but clearer now"},
			{"Cleaner code remains", "Lighter than before"},
		},
	},
	intent.Test: {
		keyword: [3][]string{
			{"Tests guard {}", "{} now tested", "Checks for {} and {}", "Proving {}"},
			{"Each assertion holds the {}", "New checks watch {} and {}", "A safety net under {}", "The {} cases all pass"},
			{"{} is proven", "Green lights for {}", "{} stands firm", "Trust in {} grows"},
		},
		generic: [3][2]string{
			{"Tests added with care", "New checks stand on guard"},
			{"Every case is proven true", "Assertions watch over code"},
			{"All green lights shine now", "The suite passes clean"},
		},
	},
	intent.Docs: {
		keyword: [3][]string{
			{"Notes on {}", "{} explained", "Words for {} and {}", "Docs for {} grow"},
			{"The {} guide reads clearly now", "Pages tell of {} and {}", "Ink flows softly over {}", "Wrote down how the {} works"},
			{"{} made clear", "Read of {} now", "Now {} speaks", "{} is told"},
		},
		generic: [3][2]string{
			{"Documentation", "Words now guide the way"},
			{"The pages speak more clearly", "Fresh ink explains how it works"},
			{"Now up to date here", "Clearer words remain"},
		},
	},
	intent.Update: {
		keyword: [3][]string{
			{"{} updated", "Changes to {}", "{} and {} moved", "Tuned the {} code"},
			{"The {} shifts with the tide", "Adjusted {} and {}", "Small changes ripple through {}", "Touched the {} here and there"},
			{"{} moves on", "Fresh {} now", "{} is tuned", "Onward with {}"},
		},
		generic: [3][2]string{
			{"Code updated now", "Small changes applied"},
			{"Modified to improve flow", "The code shifts with the season"},
			{"Changes applied here", "The update is done"},
		},
	},
	intent.Remove: {
		keyword: [3][]string{
			{"{} removed", "Farewell to {}", "{} and {} gone", "Dropped the {} code"},
			{"The {} fades into the past", "Swept away {} and {}", "Less to carry without {}", "Old {} leaves like autumn"},
			{"{} is gone", "Less {} now", "{} departs", "Gone is {}"},
		},
		generic: [3][2]string{
			{"Removed the old code", "Dead code swept away"},
			{"Unused code is gone at last", "What was old now fades away"},
			{"Cleanup is complete", "Lighter code remains"},
		},
	},
}
