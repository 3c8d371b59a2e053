package track

//TracePoint is one point of the trail drawn behind the ball. Age 0 is the current frame.
type TracePoint struct {
	Point
	Age int
}

//TraceAt returns the trail to draw on frame num: up to n points walking back from num, newest first.
//The trail stops at the first frame without a point and never reaches frame 0.
func TraceAt(t Track, num, n int) []TracePoint {
	if num < 0 || num >= len(t) {
		return nil
	}

	trail := make([]TracePoint, 0, n)
	for age := 0; age < n && num-age > 0; age++ {
		p := t[num-age]
		if p == nil {
			break
		}
		trail = append(trail, TracePoint{Point: *p, Age: age})
	}
	return trail
}
