package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/kanade13/deltaforce/internal/contract"
)

// ListCatalogNames returns the sorted item names present in the dataset at
// the given ref (HEAD when empty). It helps an analyst discover the exact
// names to request, including condition suffixes and spacing.
func ListCatalogNames(ctx context.Context, cfg *contract.Config, client contract.GitClient, ref string) ([]string, error) {
	if ref == "" {
		ref = "HEAD"
	}
	content, err := client.ShowFileAtCommit(ctx, cfg.RepoPath, ref, cfg.DatasetFile)
	if err != nil {
		return nil, &RepositoryAccessError{Path: cfg.RepoPath, Err: err}
	}
	observations, _, err := ParseSnapshot(ref, content)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(observations))
	for name := range observations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ExecuteCatalog prints the catalog names at HEAD, one per line.
func ExecuteCatalog(ctx context.Context, cfg *contract.Config, ref string) error {
	client := contract.NewLocalGitClient()
	names, err := ListCatalogNames(ctx, cfg, client, ref)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
