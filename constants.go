package main

// Version is shown in the menu header and by --version.
const Version = "0.4.0"

// Menu choices
const (
	MenuPlay     = 1
	MenuTutorial = 2
	MenuExit     = 3
)

// Prompt constants
const (
	PromptChoice   = ": "
	PromptGuess    = "Enter a word: "
	PromptContinue = "Press Enter to continue..."
)

// Message constants
const (
	ErrorNotANumber    = "Not a valid number. try again"
	ErrorInvalidChoice = "Not a valid choice. try again"
	ErrorTryAgain      = " try again."
	MessageWon         = "Congratulations, YOU WON!"
	MessageLost        = "Too bad! You lose..."
)
