package linefit

// DefaultAgreementTolerance is the relative tolerance within which two
// slope estimates are treated as the same answer.
const DefaultAgreementTolerance = 1e-9

// Options configures a Comparator.
type Options struct {
	// AgreementTolerance is the relative slope tolerance used when judging
	// whether the offset-robust fits agree with each other.
	AgreementTolerance float64

	// IncludeReference additionally fits a QR factorization model on the
	// unshifted data as an independent cross-check.
	IncludeReference bool
}

// Validate runs basic validation on comparator options filling in defaults
// for unset fields.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if o.AgreementTolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	if o.AgreementTolerance == 0 {
		o.AgreementTolerance = DefaultAgreementTolerance
	}
	return o, nil
}

// NewDefaultOptions returns a default set of comparator options
func NewDefaultOptions() *Options {
	return &Options{
		AgreementTolerance: DefaultAgreementTolerance,
		IncludeReference:   true,
	}
}
