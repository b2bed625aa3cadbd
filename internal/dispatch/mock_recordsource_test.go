// Test doubles for recordDecoder (github.com/gwierzchowski/toy-trx-engine/internal/dispatch).
// MockRecordDecoder follows the shape of MockGen output; the file is
// maintained by hand.

package dispatch_test

import (
	io "io"
	reflect "reflect"

	ingest "github.com/gwierzchowski/toy-trx-engine/internal/ingest"
	gomock "github.com/golang/mock/gomock"
)

// MockRecordDecoder is a mock of the recordDecoder interface.
type MockRecordDecoder struct {
	ctrl     *gomock.Controller
	recorder *MockRecordDecoderMockRecorder
}

// MockRecordDecoderMockRecorder is the mock recorder for MockRecordDecoder.
type MockRecordDecoderMockRecorder struct {
	mock *MockRecordDecoder
}

// NewMockRecordDecoder creates a new mock instance.
func NewMockRecordDecoder(ctrl *gomock.Controller) *MockRecordDecoder {
	mock := &MockRecordDecoder{ctrl: ctrl}
	mock.recorder = &MockRecordDecoderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecordDecoder) EXPECT() *MockRecordDecoderMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *MockRecordDecoder) Next() (ingest.Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(ingest.Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockRecordDecoderMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockRecordDecoder)(nil).Next))
}

// mockRecordSource is a small hand-written stand-in used by the tests that
// just need a canned sequence of records rather than call-order assertions;
// MockRecordDecoder above is reserved for the one test that actually cares
// about exact call counts (TestRunStopsCallingNextAfterEOF).
type mockRecordSource struct {
	records []ingest.Record
	errAt   int // index at which Next returns errAt's error instead of a record; -1 to disable
	err     error
	pos     int
}

func newMockRecordSource(records ...ingest.Record) *mockRecordSource {
	return &mockRecordSource{records: records, errAt: -1}
}

func (m *mockRecordSource) failAt(idx int, err error) *mockRecordSource {
	m.errAt = idx
	m.err = err
	return m
}

func (m *mockRecordSource) Next() (ingest.Record, error) {
	if m.pos == m.errAt {
		m.pos++
		return ingest.Record{}, m.err
	}
	if m.pos >= len(m.records) {
		return ingest.Record{}, io.EOF
	}
	rec := m.records[m.pos]
	m.pos++
	return rec, nil
}
