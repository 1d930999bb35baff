package services

import "time"

// ConvertOffset shifts a reference-timezone wall-clock timestamp so it reads
// as seen from the caller's timezone, using only the two GMT offsets.
//
// A non-negative caller offset adds |ref|+|caller| seconds; a negative one
// subtracts ||caller|-|ref|| seconds. For a reference zone west of GMT this
// matches plain offset subtraction whenever |caller| >= |ref|.
func ConvertOffset(timestamp string, callerOffset, referenceOffset int) (string, error) {
	t, err := time.Parse(time.DateTime, timestamp)
	if err != nil {
		return "", &DateParseError{Input: timestamp, Err: err}
	}

	if callerOffset >= 0 {
		diff := abs(abs(referenceOffset) + abs(callerOffset))
		t = t.Add(time.Duration(diff) * time.Second)
	} else {
		diff := abs(abs(callerOffset) - abs(referenceOffset))
		t = t.Add(-time.Duration(diff) * time.Second)
	}

	return t.Format(time.DateTime), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
