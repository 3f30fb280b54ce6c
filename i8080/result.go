package i8080

// StepResult is the outcome of executing a single instruction. Only StepError
// signals a fault. The other outcomes are for the driver loop to act on.
type StepResult int

const (
	StepOk StepResult = iota
	StepError
	StepNotKnownOpcode
	StepNoOperation
	StepHalt
)

func (r StepResult) String() string {
	switch r {
	case StepOk:
		return "Ok"
	case StepError:
		return "Error"
	case StepNotKnownOpcode:
		return "NotKnownOpcode"
	case StepNoOperation:
		return "NoOperation"
	case StepHalt:
		return "Halt"
	}
	return "unknown step result"
}

// LoadResult is the outcome of loading a ROM image into memory.
type LoadResult int

const (
	LoadOk LoadResult = iota
	LoadError
	LoadNotFound
)

func (r LoadResult) String() string {
	switch r {
	case LoadOk:
		return "Ok"
	case LoadError:
		return "Error"
	case LoadNotFound:
		return "NotFound"
	}
	return "unknown load result"
}
