package utils

import "testing"

func TestAccessTokenRoundtrip(t *testing.T) {
	token, err := GenerateAccessToken("p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.PlayerID != "p1" {
		t.Fatalf("playerID = %q, want p1", claims.PlayerID)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseAccessToken("not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestSecretsNotInterchangeable(t *testing.T) {
	token, err := GenerateRefreshToken("p1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAccessToken(token); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}
