package agent

// Result is the tagged outcome of one agent run: successful prose, or
// placeholder prose carrying the cause. Callers always read Content,
// so the render path never constructs an ad hoc stand-in.
type Result struct {
	Content string
	Err     error
}

func Success(content string) Result {
	return Result{Content: content}
}

func Failed(placeholder string, err error) Result {
	return Result{Content: placeholder, Err: err}
}

// OK reports whether the run produced real content.
func (r Result) OK() bool {
	return r.Err == nil
}
