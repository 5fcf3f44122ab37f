package service

import (
	"context"
	"encoding/base64"

	"golang.org/x/sync/errgroup"

	"sogsync/internal/crypto"
	"sogsync/internal/logger"
	"sogsync/models"
)

// verifyConcurrency bounds the goroutines spent on signature checks so a
// large poll window does not monopolize the scheduler.
const verifyConcurrency = 4

// ed25519Verifier is the default [SignatureVerifier]: Ed25519 verification
// under the key embedded in the sender identity, standard or blinded.
type ed25519Verifier struct {
	logger *logger.Logger
}

func NewSignatureVerifier(log *logger.Logger) SignatureVerifier {
	return &ed25519Verifier{logger: log}
}

// VerifyAll implements [SignatureVerifier]. The result preserves input order
// and contains the items whose signatures verify; items with undecodable
// signatures or data simply fail verification.
func (v *ed25519Verifier) VerifyAll(ctx context.Context, items []models.SignedItem) ([]models.SignedItem, error) {
	valid := make([]bool, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			valid[i] = verifyOne(item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.SignedItem, 0, len(items))
	for i, item := range items {
		if valid[i] {
			out = append(out, item)
		} else {
			v.logger.Debug().Str("sender", item.Sender).Msg("dropping message with invalid signature")
		}
	}
	return out, nil
}

func verifyOne(item models.SignedItem) bool {
	signature, err := base64.StdEncoding.DecodeString(item.Signature)
	if err != nil {
		return false
	}
	data, err := base64.StdEncoding.DecodeString(item.Data)
	if err != nil {
		return false
	}
	return crypto.VerifySignature(item.Sender, data, signature)
}
