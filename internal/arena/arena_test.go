package arena

import "testing"

func TestHeapAllocatorAlwaysAvailable(t *testing.T) {
	var a HeapAllocator
	b := a.Alloc(128)
	if len(b) != 128 {
		t.Fatalf("len(b) = %d, want 128", len(b))
	}
	if a.Available() != -1 {
		t.Fatalf("Available() = %d, want -1", a.Available())
	}
	a.Release()
}

func TestBumpAllocatorTracksOffset(t *testing.T) {
	a := NewBumpAllocator(100)
	if a.Available() != 100 {
		t.Fatalf("Available() = %d, want 100", a.Available())
	}
	b1 := a.Alloc(40)
	if len(b1) != 40 || a.Available() != 60 {
		t.Fatalf("after Alloc(40): len=%d avail=%d", len(b1), a.Available())
	}
	b2 := a.Alloc(60)
	if len(b2) != 60 || a.Available() != 0 {
		t.Fatalf("after Alloc(60): len=%d avail=%d", len(b2), a.Available())
	}
}

func TestBumpAllocatorPanicsWhenExhausted(t *testing.T) {
	a := NewBumpAllocator(10)
	defer func() {
		if recover() == nil {
			t.Fatal("Alloc beyond capacity should panic")
		}
	}()
	a.Alloc(11)
}

func TestBumpAllocatorReleaseResets(t *testing.T) {
	a := NewBumpAllocator(10)
	a.Alloc(10)
	if a.Available() != 0 {
		t.Fatalf("Available() = %d, want 0", a.Available())
	}
	a.Release()
	if a.Available() != 10 {
		t.Fatalf("after Release, Available() = %d, want 10", a.Available())
	}
}
