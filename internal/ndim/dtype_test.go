package ndim

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := InferDataType[float32](); dt != Float32 {
		t.Errorf("InferDataType[float32]() = %v, want Float32", dt)
	}
	if dt := InferDataType[float64](); dt != Float64 {
		t.Errorf("InferDataType[float64]() = %v, want Float64", dt)
	}
	if dt := InferDataType[int32](); dt != Int32 {
		t.Errorf("InferDataType[int32]() = %v, want Int32", dt)
	}
	if dt := InferDataType[int64](); dt != Int64 {
		t.Errorf("InferDataType[int64]() = %v, want Int64", dt)
	}
	if dt := InferDataType[uint8](); dt != Uint8 {
		t.Errorf("InferDataType[uint8]() = %v, want Uint8", dt)
	}
	if dt := InferDataType[bool](); dt != Bool {
		t.Errorf("InferDataType[bool]() = %v, want Bool", dt)
	}
}

func TestLayoutString(t *testing.T) {
	tests := []struct {
		layout Layout
		str    string
	}{
		{Dynamic, "dynamic"},
		{RowMajor, "row-major"},
		{ColumnMajor, "column-major"},
		{Layout(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.layout.String(); got != tt.str {
			t.Errorf("Layout.String() = %q, want %q", got, tt.str)
		}
	}
}
