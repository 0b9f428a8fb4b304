package errorkit

// Categories shared by the internal and external test packages.

type testCase string

const (
	testGeneric testCase = "generic"
	testInput   testCase = "input"
)

// TestSource is an Origin-based source taxonomy.
type TestSource = Origin[testCase]

var (
	SourceGeneric = NewOrigin(testGeneric)
	SourceInput   = NewOrigin(testInput)
)

// TestError is a category using TestSource.
type TestError struct{}

func (TestError) Name() string { return "TestError" }

type TestErr = Wrapper[TestError, TestSource]

func (TestError) Generic() TestErr {
	return FromBacking[TestError](NewBacking("generic", SourceGeneric, WithReason("Email format is invalid")))
}

// NetworkSource is a plain string source taxonomy.
type NetworkSource string

const (
	NetworkTransport NetworkSource = "transport"
	NetworkDNS       NetworkSource = "dns"
)

func (s NetworkSource) String() string { return string(s) }

// NetworkError is a category using NetworkSource.
type NetworkError struct{}

func (NetworkError) Name() string { return "NetworkError" }

type NetworkErr = Wrapper[NetworkError, NetworkSource]

func (NetworkError) Timeout(reason string) NetworkErr {
	return New[NetworkError]("timeout", NetworkTransport, WithReason(reason))
}

// OtherError shares TestSource with TestError under a different name.
type OtherError struct{}

func (OtherError) Name() string { return "OtherError" }
