package cli

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewCmdSSO() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sso private-key|token",
		Short: "Generate either a user token or the signing private key",
	}

	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newPrivateKeyCmd())

	return cmd
}

type tokenOptions struct {
	PrivateKey string
	Username   string
	Email      string
	Kid        string
	TTL        time.Duration
}

func (o *tokenOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.PrivateKey, "private-key", "", "", "path to the PEM private key used to sign the token")
	fs.StringVarP(&o.Username, "username", "", "", "preferred_username claim")
	fs.StringVarP(&o.Email, "email", "", "", "email claim")
	fs.StringVarP(&o.Kid, "kid", "", "", "key id set in the token header")
	fs.DurationVarP(&o.TTL, "ttl", "", 24*time.Hour, "token lifetime")
}

func newTokenCmd() *cobra.Command {
	o := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a jwt accepted by the sso authenticator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Username == "" && o.Email == "" {
				return errors.New("one of --username or --email is required")
			}

			content, err := os.ReadFile(o.PrivateKey)
			if err != nil {
				return fmt.Errorf("reading private key: %w", err)
			}
			privateKey, err := ParsePrivateKey(string(content))
			if err != nil {
				return err
			}

			token, err := GenerateToken(o.Username, o.Email, o.Kid, o.TTL, privateKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	o.Bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("private-key")

	return cmd
}

func newPrivateKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "private-key",
		Short: "Generate a private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
			if err != nil {
				return err
			}
			pemdata := pem.EncodeToMemory(
				&pem.Block{
					Type:  "RSA PRIVATE KEY",
					Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
				},
			)
			fmt.Fprintln(cmd.OutOrStdout(), string(pemdata))
			return nil
		},
	}
}

func ParsePrivateKey(content string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(content))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	return key, nil
}

func GenerateToken(username, email, kid string, ttl time.Duration, privateKey *rsa.PrivateKey) (string, error) {
	type TokenClaims struct {
		PreferredUsername string `json:"preferred_username,omitempty"`
		Email             string `json:"email,omitempty"`
		jwt.RegisteredClaims
	}

	now := time.Now()
	claims := TokenClaims{
		username,
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "savvyctl",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
