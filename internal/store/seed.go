package store

import (
	"context"
	"fmt"
)

// defaultCategories is the topic taxonomy offered to IT-student users at
// setup time.
var defaultCategories = []Category{
	{Name: "テクノロジー", Slug: "technology"},
	{Name: "ソフトウェア", Slug: "software"},
	{Name: "開発", Slug: "development"},
	{Name: "プログラミング言語", Slug: "programming-languages"},
	{Name: "JavaScript", Slug: "javascript"},
	{Name: "Python", Slug: "python"},
	{Name: "Ruby", Slug: "ruby"},
	{Name: "Go", Slug: "go"},
	{Name: "フレームワーク・ライブラリ", Slug: "frameworks-libraries"},
	{Name: "React / Next.js", Slug: "react-nextjs"},
	{Name: "ツールとワークフロー", Slug: "tools-workflow"},
	{Name: "バージョン管理 / Git", Slug: "git"},
	{Name: "CI / CD", Slug: "ci-cd"},
	{Name: "テスト", Slug: "testing"},
	{Name: "クラウド / インフラ", Slug: "cloud-infra"},
	{Name: "DevOps / SRE", Slug: "devops-sre"},
	{Name: "コンテナ / Docker", Slug: "containers-docker"},
	{Name: "データベース", Slug: "databases"},
	{Name: "コンピュータサイエンス基礎", Slug: "cs-fundamentals"},
	{Name: "アルゴリズム・データ構造", Slug: "algorithms-ds"},
	{Name: "ネットワーキング", Slug: "networking"},
	{Name: "AI / 機械学習", Slug: "ai-ml"},
	{Name: "セキュリティ", Slug: "security"},
	{Name: "Web / フロントエンド", Slug: "web-frontend"},
	{Name: "モバイル", Slug: "mobile"},
	{Name: "キャリア・就職活動", Slug: "career-job-hunting"},
	{Name: "インターンシップ", Slug: "internships"},
	{Name: "面接準備", Slug: "interview-prep"},
	{Name: "学習リソース", Slug: "learning-resources"},
	{Name: "プロジェクト・OSS", Slug: "projects-open-source"},
	{Name: "イベント・ミートアップ", Slug: "events-meetups"},
	{Name: "ソフトスキル", Slug: "soft-skills"},
}

// SeedCategories inserts the default taxonomy, skipping slugs that
// already exist. Safe to run on every startup.
func (s *Store) SeedCategories(ctx context.Context) error {
	for _, c := range defaultCategories {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (name, slug) VALUES (?, ?)`,
			c.Name, c.Slug)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
	}
	return nil
}
