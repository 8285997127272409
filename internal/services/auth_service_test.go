package services

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	svc := NewAuthService()

	hash, err := svc.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := svc.CheckPassword(hash, "correct horse"); err != nil {
		t.Errorf("CheckPassword with right password: %v", err)
	}
	if err := svc.CheckPassword(hash, "battery staple"); err == nil {
		t.Error("CheckPassword must reject a wrong password")
	}
}
