package snake

// State is the active screen of the game.
type State int

const (
	StateMainMenu State = iota
	StateDifficultySelect
	StatePlaying
	StatePaused
	StateGameOver
	StateHighScores
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateDifficultySelect:
		return "difficulty_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateHighScores:
		return "high_scores"
	default:
		return "unknown"
	}
}

// Event is an input or game condition that may change the state.
type Event int

const (
	EventNewGame Event = iota
	EventContinue
	EventHighScores
	EventPickDifficulty
	EventBack
	EventPause
	EventResume
	EventMainMenu
	EventGameOver
	EventPlayAgain
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventNewGame:
		return "new_game"
	case EventContinue:
		return "continue"
	case EventHighScores:
		return "high_scores"
	case EventPickDifficulty:
		return "pick_difficulty"
	case EventBack:
		return "back"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventMainMenu:
		return "main_menu"
	case EventGameOver:
		return "game_over"
	case EventPlayAgain:
		return "play_again"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type transition struct {
	from  State
	event Event
}

var transitions = map[transition]State{
	{StateMainMenu, EventNewGame}:                StateDifficultySelect,
	{StateMainMenu, EventContinue}:               StatePlaying,
	{StateMainMenu, EventHighScores}:             StateHighScores,
	{StateDifficultySelect, EventPickDifficulty}: StatePlaying,
	{StateDifficultySelect, EventBack}:           StateMainMenu,
	{StatePlaying, EventPause}:                   StatePaused,
	{StatePaused, EventResume}:                   StatePlaying,
	{StatePaused, EventMainMenu}:                 StateMainMenu,
	{StatePlaying, EventGameOver}:                StateGameOver,
	{StateGameOver, EventPlayAgain}:              StatePlaying,
	{StateGameOver, EventMainMenu}:               StateMainMenu,
	{StateHighScores, EventBack}:                 StateMainMenu,
}

// Next returns the state reached from `from` on event ev. The second result
// is false when the event does not apply, in which case `from` is returned.
// Continue only applies when an unfinished episode exists. Quit is not a
// transition: it ends the program from any state.
func Next(from State, ev Event, hasEpisode bool) (State, bool) {
	if ev == EventContinue && !hasEpisode {
		return from, false
	}
	to, ok := transitions[transition{from, ev}]
	if !ok {
		return from, false
	}
	return to, true
}
