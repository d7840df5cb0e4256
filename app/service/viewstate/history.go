package viewstate

const maxConversation = 50

// appendEntry returns a new log with msg at the end, dropping the oldest
// entries past maxConversation. The input slice is never modified.
func appendEntry(log []Entry, msg Entry) []Entry {
	start := 0
	if len(log) >= maxConversation {
		start = len(log) - maxConversation + 1
	}

	result := make([]Entry, 0, len(log)-start+1)
	result = append(result, log[start:]...)

	return append(result, msg)
}

func cloneConversation(log []Entry) []Entry {
	if log == nil {
		return nil
	}

	result := make([]Entry, len(log))
	copy(result, log)

	return result
}
