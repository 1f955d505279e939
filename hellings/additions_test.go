package hellings

import "testing"

func TestAdditionsReusedAcrossSizes(t *testing.T) {
	small, err := borrowAdditions(3)
	if err != nil {
		t.Fatal(err)
	}
	small.add(2)
	small.add(2)
	if len(small.heads) != 1 {
		t.Errorf("Expected duplicate additions to be collapsed, have %v", small.heads)
	}
	small.release()
	large, err := borrowAdditions(130)
	if err != nil {
		t.Fatal(err)
	}
	defer large.release()
	if large != small {
		t.Errorf("Expected released buffer to be borrowed again")
	}
	if len(large.heads) != 0 || large.marks.Has(2) {
		t.Errorf("Expected borrowed buffer to be cleared, have %v", large.heads)
	}
	large.add(129)
	large.add(2)
	if len(large.heads) != 2 || !large.marks.Has(129) {
		t.Errorf("Expected buffer to hold non-terminal 129, have %v", large.heads)
	}
}
