package config

import "strings"

// envKeyReplacer maps nested keys to environment names:
// classifier.scene_sublayer_threshold -> USDCHECK_CLASSIFIER_SCENE_SUBLAYER_THRESHOLD.
var envKeyReplacer = strings.NewReplacer(".", "_")
