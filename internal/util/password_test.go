package util_test

import (
	"testing"

	"brandistry/internal/util"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := util.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("password stored in clear")
	}

	if !util.CheckPassword("hunter2", hash) {
		t.Fatalf("correct password rejected")
	}
	if util.CheckPassword("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, _ := util.HashPassword("same")
	h2, _ := util.HashPassword("same")
	if h1 == h2 {
		t.Fatalf("identical hashes for the same input")
	}
}
