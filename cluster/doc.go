// Package cluster groups profile embeddings with seeded k-means and
// summarizes the resulting groups.
//
// Fitting is deterministic for a fixed seed: the first centroid is drawn
// from a seeded source and the remaining centroids are placed farthest-first,
// with index order breaking ties. The same vectors, k, and seed always
// produce the same labels.
//
// A fitted Model assigns new vectors to their nearest centroid and reports a
// confidence that decays with euclidean distance. Project2D provides the
// two-dimensional PCA coordinates used for visualization exports.
package cluster
