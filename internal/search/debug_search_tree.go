package search

import (
	"fmt"
	"strings"

	. "github.com/cricklet/chessduel/internal/helpers"
)

type debugSearchLine struct {
	DebugString string
	Depth       int
	Alpha       int
	Beta        int
	Score       Optional[int]
	Legal       Optional[bool]
}

// debugSearchTree records every visited move so a search can be replayed
// as an indented tree.
type debugSearchTree struct {
	CurrentDepth int
	Result       []debugSearchLine
}

// DebugString prints moves shallower than depth, outermost first.
func (s *debugSearchTree) DebugString(depth int) string {
	result := ""
	for _, line := range s.Result {
		if line.Depth >= depth {
			continue
		}
		if !line.Score.HasValue() {
			continue
		}
		scoreString := ScoreString(line.Score.Value())
		if line.Legal.HasValue() && !line.Legal.Value() {
			scoreString = "illegal"
		}
		result += fmt.Sprintf("%v%v (%v %v) %v\n",
			strings.Repeat(" ", line.Depth),
			line.DebugString,
			line.Alpha,
			line.Beta,
			scoreString)
	}
	return result
}

func (s *debugSearchTree) Reset() {
	s.CurrentDepth = 0
	s.Result = s.Result[:0]
}

func (s *debugSearchTree) MovePush(move string, player Player, alpha int, beta int) int {
	s.Result = append(s.Result, debugSearchLine{
		DebugString: fmt.Sprintf("%v (%v)", player, move),
		Depth:       s.CurrentDepth,
		Alpha:       alpha,
		Beta:        beta,
	})
	s.CurrentDepth += 1
	return len(s.Result) - 1
}

// MovePop fills in the line opened by MovePush so that parents print
// before their children.
func (s *debugSearchTree) MovePop(index int, result int, legal bool) {
	s.CurrentDepth -= 1
	s.Result[index].Score = Some(result)
	s.Result[index].Legal = Some(legal)
}
