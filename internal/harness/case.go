package harness

// Input selects the text a case is solved against: the externally supplied
// puzzle input, or an example embedded in the case table.
type Input struct {
	example   string
	isExample bool
}

// FullInput selects the puzzle input passed to the runner.
var FullInput = Input{}

// ExampleInput selects a fixed example text.
func ExampleInput(text string) Input {
	return Input{example: text, isExample: true}
}

// IsExample reports whether the selector carries its own example text.
func (in Input) IsExample() bool {
	return in.isExample
}

// Resolve returns the effective input given the full puzzle input.
func (in Input) Resolve(full string) string {
	if in.isExample {
		return in.example
	}
	return full
}

// Tag is the padded label used in case report lines.
func (in Input) Tag() string {
	if in.isExample {
		return "example"
	}
	return "input  "
}

// Case is one entry of a day's case table. A nil Expected means the result is
// printed but not checked.
type Case struct {
	Part     Part
	Input    Input
	Expected *Result
}

// Answer declares a full-input case with a known answer.
func Answer(part Part, expected Result) Case {
	return Case{Part: part, Input: FullInput, Expected: &expected}
}

// Unchecked declares a full-input case whose answer is not known yet.
func Unchecked(part Part) Case {
	return Case{Part: part, Input: FullInput}
}

// Example declares a case solved against an embedded example text.
func Example(part Part, expected Result, text string) Case {
	return Case{Part: part, Input: ExampleInput(text), Expected: &expected}
}

// ExampleUnchecked declares an example case without an expected answer.
func ExampleUnchecked(part Part, text string) Case {
	return Case{Part: part, Input: ExampleInput(text)}
}
