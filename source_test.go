package errorkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrigin_Base(t *testing.T) {
	require.Equal(t, testGeneric, SourceGeneric.Base())
	require.Equal(t, testInput, SourceInput.Base())
}

func TestOrigin_String(t *testing.T) {
	require.Equal(t, "generic", SourceGeneric.String())
	require.Equal(t, "input", SourceInput.String())
}

func TestOrigin_Equality(t *testing.T) {
	require.True(t, SourceGeneric == NewOrigin(testGeneric))
	require.False(t, SourceGeneric == SourceInput)

	// Usable as a map key.
	seen := map[TestSource]int{SourceGeneric: 1}
	seen[NewOrigin(testGeneric)]++
	require.Equal(t, 2, seen[SourceGeneric])
}

func TestOrigin_Text(t *testing.T) {
	text, err := SourceInput.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "input", string(text))

	var decoded TestSource
	require.NoError(t, decoded.UnmarshalText(text))
	require.Equal(t, SourceInput, decoded)
}

func TestOrigin_JSON(t *testing.T) {
	data, err := json.Marshal(SourceGeneric)
	require.NoError(t, err)
	require.JSONEq(t, `"generic"`, string(data))

	var decoded TestSource
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, SourceGeneric, decoded)
}

func TestOrigin_YAML(t *testing.T) {
	data, err := yaml.Marshal(SourceInput)
	require.NoError(t, err)
	require.Equal(t, "input\n", string(data))

	var decoded TestSource
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, SourceInput, decoded)
}

func TestOrigin_YAML_NonScalar(t *testing.T) {
	var decoded TestSource
	err := yaml.Unmarshal([]byte("[generic]"), &decoded)
	require.Error(t, err)
	require.Contains(t, err.Error(), "source must be a scalar")
}

type colorCase string

const (
	colorRed  colorCase = "red"
	colorBlue colorCase = "blue"
)

func (colorCase) Cases() []colorCase {
	return []colorCase{colorRed, colorBlue}
}

type colorSource = Origin[colorCase]

func requireUnknownCase(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	kitErr, ok := AsWrapper[KitError, KitSource](err)
	require.True(t, ok, "expected KitErr, got %T", err)
	require.Equal(t, TypeUnknownCase, kitErr.Type())
	require.Equal(t, SourceDecoding, kitErr.Source())

	reason, _ := kitErr.Reason()
	require.Equal(t, `unknown source case "purple"`, reason)
}

func TestOrigin_CaseSet(t *testing.T) {
	var decoded colorSource
	require.NoError(t, decoded.UnmarshalText([]byte("blue")))
	require.Equal(t, NewOrigin(colorBlue), decoded)

	err := decoded.UnmarshalText([]byte("purple"))
	requireUnknownCase(t, err)

	// Unchanged after a rejected case.
	require.Equal(t, NewOrigin(colorBlue), decoded)
}

func TestOrigin_CaseSet_YAML(t *testing.T) {
	var decoded colorSource
	require.NoError(t, yaml.Unmarshal([]byte("red"), &decoded))
	require.Equal(t, NewOrigin(colorRed), decoded)

	requireUnknownCase(t, yaml.Unmarshal([]byte("purple"), &decoded))
}

func TestOrigin_CaseSet_Wrapper(t *testing.T) {
	data := []byte(`{"name":"TestError","type":"t","source":"purple"}`)

	var fromJSON Wrapper[TestError, colorSource]
	requireUnknownCase(t, json.Unmarshal(data, &fromJSON))
	require.Equal(t, Wrapper[TestError, colorSource]{}, fromJSON)

	var fromYAML Wrapper[TestError, colorSource]
	requireUnknownCase(t, yaml.Unmarshal([]byte("name: TestError\ntype: t\nsource: purple\n"), &fromYAML))

	var backing Backing[colorSource]
	requireUnknownCase(t, json.Unmarshal([]byte(`{"type":"t","source":"purple"}`), &backing))
}

func TestOrigin_WithoutCaseSet_AcceptsAnyCase(t *testing.T) {
	var decoded TestSource
	require.NoError(t, decoded.UnmarshalText([]byte("anything")))
	require.Equal(t, "anything", decoded.String())
}

func TestKitCase_Cases(t *testing.T) {
	var decoded KitSource
	require.NoError(t, decoded.UnmarshalText([]byte("validation")))
	require.Equal(t, SourceValidation, decoded)

	err := decoded.UnmarshalText([]byte("network"))
	require.Error(t, err)
	require.Equal(t, TypeUnknownCase, TypeOf(err))
}
