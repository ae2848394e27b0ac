package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
)

type uploadLinkGeneratorSrv struct {
	strg     port.ObjectStore
	meta     *MetadataComposer
	reg      *Registrar
	uuidGen  port.UUIDGen
	strategy Strategy
}

func NewUploadLinkGenerator(
	strg port.ObjectStore,
	meta *MetadataComposer,
	reg *Registrar,
	uuidGen port.UUIDGen,
	strategy Strategy,
) port.UploadLinkGenerator {
	return &uploadLinkGeneratorSrv{strg: strg, meta: meta, reg: reg, uuidGen: uuidGen, strategy: strategy}
}

// GenerateUploadLinks issues one signed upload URL per file, in input order.
// Files are processed one at a time and the first failure aborts the batch.
// Assets registered before the failure stay in the catalog.
func (s *uploadLinkGeneratorSrv) GenerateUploadLinks(ctx context.Context, in port.GenerateUploadLinksInput) (port.GenerateUploadLinksOutput, error) {
	if err := ValidateBatch(in.Batch); err != nil {
		return port.GenerateUploadLinksOutput{}, err
	}

	if s.strategy.StrictPreflight {
		for _, f := range in.Batch.Files {
			if err := CheckASCIIFileName(*f.FileName); err != nil {
				return port.GenerateUploadLinksOutput{}, err
			}
		}
	}

	out := port.GenerateUploadLinksOutput{Files: make([]port.UploadLink, 0, len(in.Batch.Files))}
	for _, f := range in.Batch.Files {
		link, err := s.issue(ctx, in.Course.Key, *f.FileName, *f.ContentType)
		if err != nil {
			return port.GenerateUploadLinksOutput{}, err
		}
		out.Files = append(out.Files, link)
	}

	logger.Infof(ctx, "✅ issued %d upload URL(s)", len(out.Files))
	return out, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *uploadLinkGeneratorSrv) issue(ctx context.Context, courseKey, fileName, contentType string) (port.UploadLink, error) {
	id := s.uuidGen()
	key := ObjectKey(s.strategy.RootPath, id)

	if err := CheckASCIIFileName(fileName); err != nil {
		return port.UploadLink{}, err
	}

	meta, err := s.meta.Compose(ctx, fileName, courseKey)
	if err != nil {
		return port.UploadLink{}, err
	}

	signed, err := s.strg.SignUploadURL(ctx, key, contentType, meta, s.strategy.ttl())
	if err != nil {
		if !errors.Is(err, ErrCredentials) && !isContextErr(err) {
			err = fmt.Errorf("%w: sign %q: %v", ErrCredentials, key, err)
		}
		return port.UploadLink{}, err
	}

	if _, err := s.reg.Register(ctx, id, courseKey, fileName); err != nil {
		return port.UploadLink{}, err
	}

	return port.UploadLink{
		FileName:   fileName,
		UploadURL:  signed.URL,
		EdxVideoID: id,
	}, nil
}
