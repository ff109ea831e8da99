package fakefs

// Operation identifies a mock filesystem operation for recording.
type Operation int

const (
	// InvalidOperation is an invalid operation.
	InvalidOperation Operation = iota - 1

	OpStat      // OpStat represents the Stat operation.
	OpReadDir   // OpReadDir represents the ReadDir operation.
	OpReadFile  // OpReadFile represents the ReadFile operation.
	OpWriteFile // OpWriteFile represents the WriteFile operation.
	OpRealpath  // OpRealpath represents the Realpath operation.
	OpMkdir     // OpMkdir represents the Mkdir operation.

	// NumOperations is the number of available operations.
	NumOperations
)

// operationNames maps each operation to a human-readable string.
var operationNames = map[Operation]string{
	OpStat:      "Stat",
	OpReadDir:   "ReadDir",
	OpReadFile:  "ReadFile",
	OpWriteFile: "WriteFile",
	OpRealpath:  "Realpath",
	OpMkdir:     "Mkdir",
}

// String returns a human-readable string representation of the operation.
// This is used for logging and testing purposes.
func (op Operation) String() string {
	if op < 0 || op >= NumOperations {
		return ""
	}

	return operationNames[op]
}

// StringToOperation converts a string to an Operation.
// It returns an invalid operation if the string does not match a valid operation.
func StringToOperation(s string) Operation {
	for op := Operation(0); op < NumOperations; op++ {
		if operationNames[op] == s {
			return op
		}
	}
	return InvalidOperation
}
