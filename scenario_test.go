package inplace

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name  string         `yaml:"name"`
	Start []string       `yaml:"start"`
	Steps []scenarioStep `yaml:"steps"`
	Want  []string       `yaml:"want"`
}

type scenarioStep struct {
	Op        string    `yaml:"op"`
	Value     string    `yaml:"value"`
	Values    []string  `yaml:"values"`
	Pos       int       `yaml:"pos"`
	N         int       `yaml:"n"`
	First     int       `yaml:"first"`
	Last      int       `yaml:"last"`
	Other     []string  `yaml:"other"`
	Err       string    `yaml:"err"`
	Index     *int      `yaml:"index"`
	Want      *[]string `yaml:"want"`
	WantOther []string  `yaml:"want_other"`
}

func loadScenarios(t *testing.T, path string) []scenario {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []scenario
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.NotEmpty(t, out)
	for _, sc := range out {
		require.NotEmpty(t, sc.Name, "scenario without name in %s", path)
		require.NotEmpty(t, sc.Steps, "scenario %q has no steps", sc.Name)
	}
	return out
}

// orNil folds empty slices to nil; YAML decodes [] as an empty slice.
func orNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

var scenarioErrs = map[string]error{
	"capacity": ErrCapacityExceeded,
	"range":    ErrOutOfRange,
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			v, err := From[string, [4]string](sc.Start...)
			require.NoError(t, err)
			for i, st := range sc.Steps {
				msg := fmt.Sprintf("step %d (%s)", i, st.Op)
				idx, err := runStep(t, &v, st)
				if st.Err != "" {
					want, ok := scenarioErrs[st.Err]
					require.True(t, ok, "%s: unknown error kind %q", msg, st.Err)
					require.ErrorIs(t, err, want, msg)
				} else {
					require.NoError(t, err, msg)
				}
				if st.Index != nil {
					require.Equal(t, *st.Index, idx, msg)
				}
				if st.Want != nil {
					require.Equal(t, orNil(*st.Want), orNil(v.Slice()), msg)
				}
			}
			if sc.Want != nil {
				require.Equal(t, orNil(sc.Want), orNil(v.Slice()))
			}
			require.Equal(t, 4, v.Cap())
		})
	}
}

func runStep(t *testing.T, v *strVec, st scenarioStep) (int, error) {
	switch st.Op {
	case "push":
		_, err := v.PushBack(st.Value)
		return v.Len() - 1, err
	case "try_push":
		if v.TryPushBack(st.Value) == nil {
			return -1, ErrCapacityExceeded
		}
		return v.Len() - 1, nil
	case "pop":
		v.PopBack()
		return -1, nil
	case "clear":
		v.Clear()
		return -1, nil
	case "resize":
		return -1, v.Resize(st.N)
	case "resize_with":
		return -1, v.ResizeWith(st.N, st.Value)
	case "assign":
		return -1, v.Assign(st.Values...)
	case "assign_n":
		return -1, v.AssignN(st.N, st.Value)
	case "erase":
		return v.Erase(st.First, st.Last), nil
	case "insert":
		return v.Insert(st.Pos, st.Values...)
	case "insert_n":
		return v.InsertN(st.Pos, st.N, st.Value)
	case "at":
		p, err := v.At(st.Pos)
		if err == nil {
			require.Equal(t, st.Value, *p)
		}
		return st.Pos, err
	case "swap":
		other, err := From[string, [4]string](st.Other...)
		require.NoError(t, err)
		v.Swap(&other)
		require.Equal(t, orNil(st.WantOther), orNil(other.Slice()))
		return -1, nil
	default:
		t.Fatalf("unknown op %q", st.Op)
		return -1, nil
	}
}
