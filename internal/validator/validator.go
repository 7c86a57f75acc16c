package validator

// Severity represents the impact of a finding.
type Severity int

const (
	// SeverityError marks a defect that makes the file unusable for its
	// intended purpose. Any Error fails validation.
	SeverityError Severity = iota
	// SeverityWarning marks a best-practice or environment-dependent concern.
	// Warnings never fail validation.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Finding is a single problem reported by a rule.
type Finding struct {
	// Severity indicates the impact of the finding.
	Severity Severity
	// Message is the human-readable description printed to the user.
	Message string
}

// Result aggregates findings in discovery order.
//
// Result has no pass/fail field; [Result.Passed] is computed from the
// findings.
type Result struct {
	findings []Finding
	fatal    bool
}

// NewFatal returns a result holding a single Error finding for a condition
// that aborted validation before any rule ran to completion.
func NewFatal(message string) *Result {
	r := &Result{fatal: true}
	r.AddError(message)
	return r
}

// AddError appends an Error finding.
func (r *Result) AddError(message string) {
	r.findings = append(r.findings, Finding{Severity: SeverityError, Message: message})
}

// AddWarning appends a Warning finding.
func (r *Result) AddWarning(message string) {
	r.findings = append(r.findings, Finding{Severity: SeverityWarning, Message: message})
}

// Add appends a finding of the given severity.
func (r *Result) Add(severity Severity, message string) {
	r.findings = append(r.findings, Finding{Severity: severity, Message: message})
}

// Abort turns r into a fatal result: subsequent rules must not run.
func (r *Result) Abort(message string) {
	r.fatal = true
	r.AddError(message)
}

// Fatal reports whether validation stopped early.
func (r *Result) Fatal() bool {
	return r != nil && r.fatal
}

// Findings returns all findings in discovery order.
func (r *Result) Findings() []Finding {
	if r == nil {
		return nil
	}
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Passed reports whether no Error finding exists.
func (r *Result) Passed() bool {
	return !r.HasErrors()
}

// HasErrors returns true if any finding has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if any finding has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// Errors returns the Error findings in discovery order.
func (r *Result) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the Warning findings in discovery order.
func (r *Result) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Finding {
	if r == nil {
		return nil
	}
	var res []Finding
	for _, f := range r.findings {
		if f.Severity == s {
			res = append(res, f)
		}
	}
	return res
}
