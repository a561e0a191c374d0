// Package emotion classifies the facial expression on a single snapshot
// image. Face detection uses a pigo cascade; expression scoring runs a
// pre-trained FER network through onnx-go. Both models are local files:
// no network is involved, and every failure becomes a NotDetected result.
package emotion

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"github.com/owulveryck/onnx-go"
	"github.com/owulveryck/onnx-go/backend/x/gorgonnx"
	"github.com/samber/lo"
	"gorgonia.org/tensor"

	"github.com/PabloGalante/interview-coach/internal/domain"
)

// FER label order matches the model's output vector.
var emotionLabels = []string{"angry", "disgust", "fear", "happy", "sad", "surprise", "neutral"}

const (
	inputSize = 48

	// Permissive cluster-quality cutoff: a poorly lit or partially
	// obscured face should still yield a best-effort label.
	minDetectionQuality = 4.0
)

type Classifier struct {
	faceFinder *pigo.Pigo

	// The gorgonia graph keeps state across runs, so a fresh model is
	// built from these bytes for every classification.
	modelBytes []byte

	disabledReason string
}

// NewClassifier loads the face cascade and the FER model from disk.
func NewClassifier(cascadePath, modelPath string) (*Classifier, error) {
	cascade, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("reading face cascade: %w", err)
	}

	finder, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpacking face cascade: %w", err)
	}

	modelBytes, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("reading emotion model: %w", err)
	}

	return &Classifier{faceFinder: finder, modelBytes: modelBytes}, nil
}

// NewDisabled builds a classifier that answers every request with the
// given reason. Used when the model assets are not deployed, so the rest
// of the application keeps working.
func NewDisabled(reason string) *Classifier {
	return &Classifier{disabledReason: reason}
}

// Classify implements domain.EmotionClassifier.
func (c *Classifier) Classify(imageBytes []byte) (result domain.EmotionResult) {
	// The model runtime is third-party code operating on arbitrary user
	// input; a panic there must not take down the interaction.
	defer func() {
		if r := recover(); r != nil {
			result = domain.EmotionNotDetected(fmt.Sprintf("emotion analysis failed: %v", r))
		}
	}()

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil || img == nil {
		return domain.EmotionNotDetected("could not decode image")
	}

	if c.disabledReason != "" {
		return domain.EmotionNotDetected("emotion analysis unavailable: " + c.disabledReason)
	}

	face, ok := c.detectFace(img)
	if !ok {
		return domain.EmotionNotDetected("no face detected")
	}

	scores, err := c.scoreExpression(img, face)
	if err != nil {
		return domain.EmotionNotDetected(fmt.Sprintf("emotion analysis failed: %v", err))
	}

	dominant := lo.MaxBy(emotionLabels, func(a, b string) bool {
		return scores[a] > scores[b]
	})

	return domain.EmotionDetected(dominant, scores)
}

// detectFace runs the cascade over the grayscale image and returns the
// best clustered detection above the permissive quality cutoff.
func (c *Classifier) detectFace(img image.Image) (pigo.Detection, bool) {
	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Max.X, src.Bounds().Max.Y

	params := pigo.CascadeParams{
		MinSize:     40,
		MaxSize:     2000,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	detections := c.faceFinder.RunCascade(params, 0.0)
	detections = c.faceFinder.ClusterDetections(detections, 0.2)

	candidates := lo.Filter(detections, func(d pigo.Detection, _ int) bool {
		return float64(d.Q) >= minDetectionQuality
	})
	if len(candidates) == 0 {
		return pigo.Detection{}, false
	}

	best := lo.MaxBy(candidates, func(a, b pigo.Detection) bool {
		return a.Q > b.Q
	})
	return best, true
}

// scoreExpression crops the detected region, normalizes it to the model's
// 48x48 grayscale input and runs the FER network.
func (c *Classifier) scoreExpression(img image.Image, face pigo.Detection) (map[string]float64, error) {
	half := face.Scale / 2
	rect := image.Rect(face.Col-half, face.Row-half, face.Col+half, face.Row+half)
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("detected region outside image bounds")
	}

	crop := imaging.Crop(img, rect)
	gray := imaging.Grayscale(crop)
	small := imaging.Resize(gray, inputSize, inputSize, imaging.Lanczos)

	input := make([]float32, inputSize*inputSize)
	for y := 0; y < inputSize; y++ {
		for x := 0; x < inputSize; x++ {
			// NRGBA after Grayscale has R == G == B.
			i := small.PixOffset(x, y)
			input[y*inputSize+x] = float32(small.Pix[i]) / 255.0
		}
	}

	backend := gorgonnx.NewGraph()
	model := onnx.NewModel(backend)
	if err := model.UnmarshalBinary(c.modelBytes); err != nil {
		return nil, fmt.Errorf("loading emotion model: %w", err)
	}

	t := tensor.New(
		tensor.WithShape(1, 1, inputSize, inputSize),
		tensor.Of(tensor.Float32),
		tensor.WithBacking(input),
	)
	if err := model.SetInput(0, t); err != nil {
		return nil, fmt.Errorf("binding model input: %w", err)
	}

	if err := backend.Run(); err != nil {
		return nil, fmt.Errorf("running emotion model: %w", err)
	}

	outputs, err := model.GetOutputTensors()
	if err != nil || len(outputs) == 0 {
		return nil, fmt.Errorf("reading model output: %w", err)
	}

	logits, ok := outputs[0].Data().([]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected model output type")
	}

	return scoresFromLogits(logits)
}

// scoresFromLogits maps the model output onto the label set. A length
// mismatch (e.g. an 8-class FERPlus export) is rejected outright: pairing
// the wrong vector with these labels would mislabel every emotion.
func scoresFromLogits(logits []float32) (map[string]float64, error) {
	if len(logits) != len(emotionLabels) {
		return nil, fmt.Errorf("model produced %d outputs for %d emotion labels", len(logits), len(emotionLabels))
	}
	return softmaxScores(logits), nil
}

// softmaxScores turns raw logits into a label→confidence map, expressed
// as percentages summing to 100.
func softmaxScores(logits []float32) map[string]float64 {
	maxLogit := logits[0]
	for _, v := range logits[1:] {
		if v > maxLogit {
			maxLogit = v
		}
	}

	exps := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		exps[i] = math.Exp(float64(v - maxLogit))
		sum += exps[i]
	}

	scores := make(map[string]float64, len(emotionLabels))
	for i, label := range emotionLabels {
		scores[label] = exps[i] / sum * 100
	}
	return scores
}
