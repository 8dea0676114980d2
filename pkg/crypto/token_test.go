package crypto

import "testing"

func TestGenerateHashedToken(t *testing.T) {
	pair, err := GenerateHashedToken(DefaultTokenLength)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}

	if pair.Token == "" || pair.Hash == "" {
		t.Fatal("token and hash must both be set")
	}
	if pair.Token == pair.Hash {
		t.Fatal("hash must differ from the raw token")
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Error("hash must be derived from the token")
	}
}

func TestGenerateHashedTokenZeroLengthFallsBack(t *testing.T) {
	pair, err := GenerateHashedToken(0)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}
	if pair.Token == "" {
		t.Fatal("token must be generated with the default length")
	}
}

func TestVerifyToken(t *testing.T) {
	pair, err := GenerateHashedToken(DefaultTokenLength)
	if err != nil {
		t.Fatalf("GenerateHashedToken failed: %v", err)
	}

	ok, err := VerifyToken(pair.Token, pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if !ok {
		t.Error("VerifyToken should accept the matching pair")
	}

	ok, err = VerifyToken("some-other-token", pair.Hash)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if ok {
		t.Error("VerifyToken should reject a different token")
	}

	if _, err := VerifyToken("", pair.Hash); err == nil {
		t.Error("VerifyToken should reject an empty token")
	}
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pair, err := GenerateHashedToken(DefaultTokenLength)
		if err != nil {
			t.Fatalf("GenerateHashedToken failed: %v", err)
		}
		if seen[pair.Token] {
			t.Fatal("generated a duplicate token")
		}
		seen[pair.Token] = true
	}
}
