package faults_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/call_able_go/faults"
)

func TestDefaultPolicyPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		cond, ok := r.(faults.Condition)
		require.True(t, ok)
		assert.Equal(t, faults.UninitializedCall, cond.Code)
		assert.Equal(t, "faults_test", cond.Site)
		assert.NotEmpty(t, cond.Incident)
	}()

	faults.Raise(faults.UninitializedCall, "faults_test")
}

func TestUseAndRestore(t *testing.T) {
	var seen []faults.Condition
	restore := faults.Use(func(c faults.Condition) {
		seen = append(seen, c)
	})

	faults.Raise(faults.UninitializedCall, "here")
	require.Len(t, seen, 1)
	assert.Equal(t, "here", seen[0].Site)

	restore()
	assert.Panics(t, func() {
		faults.Raise(faults.UninitializedCall, "after restore")
	}, "restore reinstates the previous policy")
}

func TestIncidentIdsAreUnique(t *testing.T) {
	var seen []faults.Condition
	restore := faults.Use(func(c faults.Condition) {
		seen = append(seen, c)
	})
	defer restore()

	faults.Raise(faults.UninitializedCall, "a")
	faults.Raise(faults.UninitializedCall, "b")

	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0].Incident, seen[1].Incident)
}

func TestLoggingPolicyContinues(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	restore := faults.Use(faults.Logging(zap.New(core)))
	defer restore()

	assert.NotPanics(t, func() {
		faults.Raise(faults.UninitializedCall, "callable.Method.Call")
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "condition raised", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, string(faults.UninitializedCall), fields["code"])
	assert.Equal(t, "callable.Method.Call", fields["site"])
	assert.NotEmpty(t, fields["incident"])
}

func TestConditionError(t *testing.T) {
	cond := faults.Condition{
		Code:     faults.UninitializedCall,
		Site:     "callable.Func.Call",
		Incident: "deadbeef",
	}
	assert.Contains(t, cond.Error(), "uninitialized_call")
	assert.Contains(t, cond.Error(), "callable.Func.Call")
	assert.Contains(t, cond.Error(), "deadbeef")
}
