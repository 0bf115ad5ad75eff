package check

// VerificationError reports a policy violation: the check ran to completion
// and the project version does not match the branch version. Callers
// distinguish it from infrastructure faults (unreadable inputs, unwritable
// artifact) which surface as plain errors.
type VerificationError struct {
	Result Result
}

func (e *VerificationError) Error() string {
	return e.Result.Message
}
