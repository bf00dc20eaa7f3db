package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milvus-io/pilot/types"
)

func TestParamStatus(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{
		Name: "x",
		Params: []ParamSpec{
			{Name: "required", Type: types.Spec(types.NameText)},
			{Name: "optional", Type: types.Spec(types.NameText), Default: Optional()},
			{Name: "count", Type: types.NumberSpec(0, 10), Default: Default(3)},
			{Name: "flag", Type: types.Spec(types.NameBoolean)},
		},
	})
	param := func(name string) *Parameter {
		p, _ := cmd.Param(name)
		return p
	}

	cases := []struct {
		desc   string
		param  string
		args   Args
		expect types.Status
	}{
		{"required missing", "required", Args{}, types.StatusIncomplete},
		{"required empty", "required", Args{"required": ""}, types.StatusIncomplete},
		{"required given", "required", Args{"required": "x"}, types.StatusValid},
		{"optional missing", "optional", Args{}, types.StatusValid},
		{"optional empty", "optional", Args{"optional": ""}, types.StatusValid},
		{"default missing", "count", Args{}, types.StatusValid},
		{"default empty", "count", Args{"count": ""}, types.StatusIncomplete},
		{"number in range", "count", Args{"count": "7"}, types.StatusValid},
		{"number too big", "count", Args{"count": "42"}, types.StatusError},
		{"number garbage", "count", Args{"count": "abc"}, types.StatusError},
		{"flag missing", "flag", Args{}, types.StatusValid},
		{"flag typo", "flag", Args{"flag": "ture"}, types.StatusError},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expect, ParamStatus(param(tc.param), tc.args))
		})
	}
}

func TestRequestStatus(t *testing.T) {
	t.Run("no params", func(t *testing.T) {
		cmd := mustCommand(t, CommandSpec{Name: "x"})
		assert.Equal(t, types.StatusValid, RequestStatus(cmd, nil))
	})

	t.Run("boolean default is valid", func(t *testing.T) {
		cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
			{Name: "force", Type: types.Spec(types.NameBoolean)},
		}})
		assert.Equal(t, types.StatusValid, RequestStatus(cmd, Args{}))
	})

	t.Run("missing required text is incomplete", func(t *testing.T) {
		cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
			{Name: "message", Type: types.Spec(types.NameText)},
		}})
		assert.Equal(t, types.StatusIncomplete, RequestStatus(cmd, Args{}))
	})

	t.Run("error wins", func(t *testing.T) {
		cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
			{Name: "message", Type: types.Spec(types.NameText)},
			{Name: "count", Type: types.NumberSpec(0, 1)},
		}})
		assert.Equal(t, types.StatusError, RequestStatus(cmd, Args{"count": "5"}))
	})
}

func TestReport(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
		{Name: "op", Type: types.SelectionSpec([]string{"add", "addall", "remove"})},
		{Name: "count", Type: types.Spec(types.NameNumber), Default: Default(1)},
	}})

	reports := Report(cmd, Args{"op": "ad"})
	assert.Len(t, reports, 2)
	assert.Equal(t, types.StatusIncomplete, reports[0].Status)
	assert.Equal(t, []string{"add", "addall"}, reports[0].Conversion.PredictionNames())
	assert.Equal(t, types.StatusValid, reports[1].Status)
	assert.Nil(t, reports[1].Conversion)
}

func TestConvert(t *testing.T) {
	cmd := mustCommand(t, CommandSpec{Name: "x", Params: []ParamSpec{
		{Name: "message", Type: types.Spec(types.NameText)},
		{Name: "count", Type: types.Spec(types.NameNumber), Default: Default(3)},
		{Name: "note", Type: types.Spec(types.NameText), Default: Optional()},
		{Name: "force", Type: types.Spec(types.NameBoolean)},
		{Name: "ids", Type: types.ArraySpec(types.Spec(types.NameNumber)), Default: Optional()},
	}})

	values, err := Convert(cmd, Args{"message": "hi", "force": "true", "ids": "1 2"})
	assert.NoError(t, err)
	assert.Equal(t, "hi", values.String("message"))
	assert.Equal(t, 3, values.Int("count"))
	assert.False(t, values.Has("note"))
	assert.True(t, values.Bool("force"))
	assert.Equal(t, []any{1, 2}, values.Slice("ids"))

	_, err = Convert(cmd, Args{})
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Convert(cmd, Args{"message": "hi", "count": "x"})
	assert.ErrorIs(t, err, ErrRejected)
}
