//go:build mobile

package utils

// ebitenmobile 以 -tags mobile 构建
const mobileBuild = true
