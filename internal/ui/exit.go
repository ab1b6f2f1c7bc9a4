package ui

import "os"

// exit is swapped in tests
var exit = os.Exit
