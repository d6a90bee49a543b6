package sitemap

// Partition splits urls into consecutive chunks of at most maxSize entries,
// preserving order. No URLs yields no chunks. A non-positive maxSize puts
// everything in one chunk.
func Partition(urls []string, maxSize int) [][]string {
	if len(urls) == 0 {
		return nil
	}
	if maxSize <= 0 {
		return [][]string{urls}
	}

	chunks := make([][]string, 0, (len(urls)+maxSize-1)/maxSize)
	for start := 0; start < len(urls); start += maxSize {
		end := min(start+maxSize, len(urls))
		chunks = append(chunks, urls[start:end:end])
	}
	return chunks
}
